package dto

import "anoa.com/scholarshipapi/internal/entity"

type RegisterInput struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Name     string      `json:"name" binding:"omitempty"`
	Role     entity.Role `json:"role" binding:"required,oneof=student employee"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResendVerificationInput struct {
	Email string `json:"email" binding:"required,email"`
}

// AuthResponse carries the issued custom token plus the caller's identity.
// ProfileCompleted is only present for students; VerificationLink only on
// registration.
type AuthResponse struct {
	UID              string      `json:"uid"`
	Email            string      `json:"email"`
	Name             string      `json:"name,omitempty"`
	Role             entity.Role `json:"role"`
	Token            string      `json:"token"`
	EmailVerified    bool        `json:"emailVerified"`
	ProfileCompleted *bool       `json:"profileCompleted,omitempty"`
	VerificationLink string      `json:"verificationLink,omitempty"`
}

type VerifyStatusResponse struct {
	EmailVerified bool `json:"emailVerified"`
}
