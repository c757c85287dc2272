package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anoa.com/scholarshipapi/internal/modules/auth/dto"
	auth "anoa.com/scholarshipapi/internal/modules/auth/service"
	"anoa.com/scholarshipapi/pkg/response"
)

type AuthHandler struct {
	service auth.AuthService
}

func NewAuthHandler(service auth.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.service.Register(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result, "user registered successfully")
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, "login successful")
}

// ResendVerification handles POST /api/auth/resend-verification.
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var input dto.ResendVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	link, err := h.service.ResendVerificationEmail(c.Request.Context(), input.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"verificationLink": link}, "verification email sent")
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	uid, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.service.GetUserByUID(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user, "")
}

// VerifyStatus handles GET /api/auth/verify-status.
func (h *AuthHandler) VerifyStatus(c *gin.Context) {
	uid, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	verified, err := h.service.CheckEmailVerification(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto.VerifyStatusResponse{EmailVerified: verified}, "")
}

// DeleteAccount handles DELETE /api/auth/delete.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	uid, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), uid); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil, "account deleted successfully")
}
