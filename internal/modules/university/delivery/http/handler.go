package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"anoa.com/scholarshipapi/internal/modules/university/dto"
	university "anoa.com/scholarshipapi/internal/modules/university/service"
	"anoa.com/scholarshipapi/pkg/apperror"
	"anoa.com/scholarshipapi/pkg/response"
)

type UniversityHandler struct {
	service university.UniversityService
}

func NewUniversityHandler(service university.UniversityService) *UniversityHandler {
	return &UniversityHandler{service: service}
}

// List handles GET /api/universities.
func (h *UniversityHandler) List(c *gin.Context) {
	universities, err := h.service.ListUniversities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, universities, "")
}

// GetByID handles GET /api/universities/:id.
func (h *UniversityHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	university, err := h.service.GetUniversityByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if university == nil {
		response.Error(c, fmt.Errorf("university %s: %w", id, apperror.ErrNotFound))
		return
	}

	response.Success(c, http.StatusOK, university, "")
}

// Create handles POST /api/universities.
func (h *UniversityHandler) Create(c *gin.Context) {
	var input dto.CreateUniversityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	university, err := h.service.CreateUniversity(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, university, "university created successfully")
}

// Seed handles POST /api/universities/seed. Repeated calls duplicate the
// catalog records.
func (h *UniversityHandler) Seed(c *gin.Context) {
	if err := h.service.SeedUniversities(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, nil, "universities seeded successfully")
}
