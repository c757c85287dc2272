// Package identity wraps the external identity provider behind a narrow
// interface so services and middleware never touch the SDK directly.
package identity

import (
	"context"
	"errors"
)

var (
	ErrEmailExists     = errors.New("email already in use")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrWeakPassword    = errors.New("weak password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrGatewayInternal = errors.New("identity gateway error")
)

// User is the gateway's view of an account.
type User struct {
	UID           string
	Email         string
	DisplayName   string
	EmailVerified bool
}

// Token is a verified bearer credential.
type Token struct {
	UID   string
	Email string
}

type CreateUserParams struct {
	Email       string
	Password    string
	DisplayName string
}

// Gateway is the set of identity operations the API consumes. Implementations
// translate provider errors into the sentinel errors above.
type Gateway interface {
	CreateUser(ctx context.Context, params CreateUserParams) (*User, error)
	GetUser(ctx context.Context, uid string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	DeleteUser(ctx context.Context, uid string) error
	VerifyIDToken(ctx context.Context, idToken string) (*Token, error)
	CustomToken(ctx context.Context, uid string) (string, error)
	EmailVerificationLink(ctx context.Context, email string) (string, error)
}
