package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"anoa.com/scholarshipapi/internal/modules/student/dto"
	student "anoa.com/scholarshipapi/internal/modules/student/service"
	"anoa.com/scholarshipapi/pkg/apperror"
	"anoa.com/scholarshipapi/pkg/response"
)

type StudentHandler struct {
	service student.StudentService
}

func NewStudentHandler(service student.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// SaveProfile handles PUT /api/student/profile.
func (h *StudentHandler) SaveProfile(c *gin.Context) {
	uid, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	profile, err := h.service.CreateOrUpdateProfile(c.Request.Context(), uid, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile, "profile saved successfully")
}

// GetProfile handles GET /api/student/profile. A missing profile is a 404,
// not a server failure.
func (h *StudentHandler) GetProfile(c *gin.Context) {
	uid, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, err)
		return
	}
	if profile == nil {
		response.Error(c, fmt.Errorf("profile not yet created: %w", apperror.ErrNotFound))
		return
	}

	response.Success(c, http.StatusOK, profile, "")
}
