package response

import (
	"log/slog"
	"net/http"

	"anoa.com/scholarshipapi/pkg/apperror"
	"anoa.com/scholarshipapi/pkg/validator"
	"github.com/gin-gonic/gin"
)

const (
	CtxUserID    = "auth_uid"
	CtxUserEmail = "auth_email"
	CtxUserRole  = "auth_role"
)

// Envelope is the uniform response wrapper.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// GetUserID retrieves the authenticated user ID from the context.
func GetUserID(c *gin.Context) (string, error) {
	uid, exists := c.Get(CtxUserID)
	if !exists {
		return "", apperror.ErrUnauthorized
	}
	uidStr, ok := uid.(string)
	if !ok || uidStr == "" {
		return "", apperror.ErrUnauthorized
	}
	return uidStr, nil
}

// Success writes a success envelope.
func Success(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{Success: true, Data: data, Message: message})
}

// Error writes a failure envelope with the status mapped from the error
// taxonomy. Internal errors are logged and their details hidden.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		slog.Error("internal error", "path", c.FullPath(), "error", err)
		msg = apperror.ErrInternal.Error()
	}
	c.JSON(code, Envelope{Success: false, Message: msg})
}

// AbortError is Error for middleware chains.
func AbortError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		slog.Error("internal error", "path", c.FullPath(), "error", err)
		msg = apperror.ErrInternal.Error()
	}
	c.AbortWithStatusJSON(code, Envelope{Success: false, Message: msg})
}

// ValidationError writes a 400 envelope carrying every violated rule.
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Data:    validator.FormatValidationErrors(err),
		Message: "validation failed",
	})
}
