package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"anoa.com/scholarshipapi/internal/entity"
	"anoa.com/scholarshipapi/internal/identity"
	userRepo "anoa.com/scholarshipapi/internal/modules/auth/repository"
	"anoa.com/scholarshipapi/pkg/apperror"
	"anoa.com/scholarshipapi/pkg/response"
)

type AuthMiddleware struct {
	gateway identity.Gateway
	users   userRepo.UserRepository
}

func NewAuthMiddleware(gateway identity.Gateway, users userRepo.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{gateway: gateway, users: users}
}

// RequireAuth verifies the bearer token with the identity gateway and
// attaches the caller's uid and email to the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.AbortError(c, fmt.Errorf("missing bearer token: %w", apperror.ErrUnauthorized))
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			response.AbortError(c, fmt.Errorf("missing bearer token: %w", apperror.ErrUnauthorized))
			return
		}

		token, err := m.gateway.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			response.AbortError(c, fmt.Errorf("invalid or expired token: %w", apperror.ErrUnauthorized))
			return
		}

		c.Set(response.CtxUserID, token.UID)
		c.Set(response.CtxUserEmail, token.Email)
		c.Next()
	}
}

// RequireRole loads the caller's user document and denies the request unless
// its role is in the allowed set. The role is attached to the context for
// downstream handlers. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := response.GetUserID(c)
		if err != nil {
			response.AbortError(c, err)
			return
		}

		user, err := m.users.FindByUID(c.Request.Context(), uid)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				response.AbortError(c, err)
				return
			}
			response.AbortError(c, fmt.Errorf("load user: %w", err))
			return
		}

		if !roleAllowed(user.Role, allowed) {
			response.AbortError(c, fmt.Errorf("access requires one of the roles: %s: %w",
				joinRoles(allowed), apperror.ErrForbidden))
			return
		}

		c.Set(response.CtxUserRole, user.Role)
		c.Next()
	}
}

// RequireVerifiedEmail denies callers whose gateway record has an unverified
// email. Must run after RequireAuth.
func (m *AuthMiddleware) RequireVerifiedEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := response.GetUserID(c)
		if err != nil {
			response.AbortError(c, err)
			return
		}

		gwUser, err := m.gateway.GetUser(c.Request.Context(), uid)
		if err != nil {
			response.AbortError(c, fmt.Errorf("load identity: %w", apperror.ErrUnauthorized))
			return
		}

		if !gwUser.EmailVerified {
			response.AbortError(c, fmt.Errorf("email not verified: %w", apperror.ErrForbidden))
			return
		}

		c.Next()
	}
}

// RequireCompletedProfile denies students who have not completed their
// profile; every other role passes through. Must run after RequireRole so
// the role is already in the context.
func (m *AuthMiddleware) RequireCompletedProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(response.CtxUserRole)
		if exists && role != entity.RoleStudent {
			c.Next()
			return
		}

		uid, err := response.GetUserID(c)
		if err != nil {
			response.AbortError(c, err)
			return
		}

		user, err := m.users.FindByUID(c.Request.Context(), uid)
		if err != nil {
			response.AbortError(c, err)
			return
		}

		if user.Role == entity.RoleStudent && (user.ProfileCompleted == nil || !*user.ProfileCompleted) {
			response.AbortError(c, fmt.Errorf("profile not completed: %w", apperror.ErrForbidden))
			return
		}

		c.Next()
	}
}

func roleAllowed(role entity.Role, allowed []entity.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

func joinRoles(roles []entity.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
