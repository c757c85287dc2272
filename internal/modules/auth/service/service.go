package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"anoa.com/scholarshipapi/internal/entity"
	"anoa.com/scholarshipapi/internal/identity"
	"anoa.com/scholarshipapi/internal/modules/auth/dto"
	"anoa.com/scholarshipapi/internal/modules/auth/repository"
	"anoa.com/scholarshipapi/pkg/apperror"
)

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	GetUserByUID(ctx context.Context, uid string) (*entity.User, error)
	DeleteUser(ctx context.Context, uid string) error
	ResendVerificationEmail(ctx context.Context, email string) (string, error)
	CheckEmailVerification(ctx context.Context, uid string) (bool, error)
}

type authService struct {
	gateway identity.Gateway
	repo    repository.UserRepository
}

func NewAuthService(gateway identity.Gateway, repo repository.UserRepository) AuthService {
	return &authService{gateway: gateway, repo: repo}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	if !input.Role.Valid() {
		return nil, fmt.Errorf("role must be %q or %q: %w", entity.RoleStudent, entity.RoleEmployee, apperror.ErrInvalidInput)
	}

	gwUser, err := s.gateway.CreateUser(ctx, identity.CreateUserParams{
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.Name,
	})
	if err != nil {
		return nil, mapGatewayError(err)
	}

	link, err := s.gateway.EmailVerificationLink(ctx, gwUser.Email)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		UID:           gwUser.UID,
		Email:         gwUser.Email,
		Name:          input.Name,
		Role:          input.Role,
		EmailVerified: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if input.Role == entity.RoleStudent {
		completed := false
		user.ProfileCompleted = &completed
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user document: %w", err)
	}

	token, err := s.gateway.CustomToken(ctx, gwUser.UID)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	slog.Info("user registered", "uid", gwUser.UID, "role", input.Role)

	return &dto.AuthResponse{
		UID:              user.UID,
		Email:            user.Email,
		Name:             user.Name,
		Role:             user.Role,
		Token:            token,
		EmailVerified:    false,
		ProfileCompleted: user.ProfileCompleted,
		VerificationLink: link,
	}, nil
}

// Login does not check the password itself: credential verification is
// delegated to the gateway's client SDK upstream. The server confirms the
// account exists and the email is verified, then mints a custom token.
func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	gwUser, err := s.gateway.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	if !gwUser.EmailVerified {
		return nil, fmt.Errorf("email not verified, verify your email before logging in: %w", apperror.ErrForbidden)
	}

	user, err := s.repo.FindByUID(ctx, gwUser.UID)
	if err != nil {
		return nil, err
	}

	token, err := s.gateway.CustomToken(ctx, gwUser.UID)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	resp := &dto.AuthResponse{
		UID:           user.UID,
		Email:         user.Email,
		Name:          user.Name,
		Role:          user.Role,
		Token:         token,
		EmailVerified: gwUser.EmailVerified,
	}
	if user.Role == entity.RoleStudent {
		resp.ProfileCompleted = user.ProfileCompleted
	}
	return resp, nil
}

func (s *authService) GetUserByUID(ctx context.Context, uid string) (*entity.User, error) {
	return s.repo.FindByUID(ctx, uid)
}

// DeleteUser removes the gateway identity, then the store document. The two
// deletes are not transactional: a store failure after the gateway delete
// leaves an orphaned document. A missing gateway identity is tolerated so the
// store delete still runs.
func (s *authService) DeleteUser(ctx context.Context, uid string) error {
	if err := s.gateway.DeleteUser(ctx, uid); err != nil && !errors.Is(err, identity.ErrUserNotFound) {
		return mapGatewayError(err)
	}

	if err := s.repo.Delete(ctx, uid); err != nil {
		return fmt.Errorf("delete user document: %w", err)
	}

	slog.Info("user deleted", "uid", uid)
	return nil
}

func (s *authService) ResendVerificationEmail(ctx context.Context, email string) (string, error) {
	gwUser, err := s.gateway.GetUserByEmail(ctx, email)
	if err != nil {
		return "", mapGatewayError(err)
	}

	if gwUser.EmailVerified {
		return "", fmt.Errorf("email already verified: %w", apperror.ErrInvalidInput)
	}

	link, err := s.gateway.EmailVerificationLink(ctx, email)
	if err != nil {
		return "", mapGatewayError(err)
	}
	return link, nil
}

// CheckEmailVerification reads the live verification state from the gateway
// and, once verified, writes it back into the user document. The write-back
// is idempotent.
func (s *authService) CheckEmailVerification(ctx context.Context, uid string) (bool, error) {
	gwUser, err := s.gateway.GetUser(ctx, uid)
	if err != nil {
		return false, mapGatewayError(err)
	}

	if gwUser.EmailVerified {
		if err := s.repo.SetEmailVerified(ctx, uid, time.Now().UTC()); err != nil {
			return false, fmt.Errorf("persist verification state: %w", err)
		}
	}
	return gwUser.EmailVerified, nil
}

// mapGatewayError remaps gateway sentinels onto the error taxonomy; anything
// unrecognized collapses to internal.
func mapGatewayError(err error) error {
	switch {
	case errors.Is(err, identity.ErrEmailExists),
		errors.Is(err, identity.ErrInvalidEmail),
		errors.Is(err, identity.ErrWeakPassword):
		return fmt.Errorf("%v: %w", err, apperror.ErrInvalidInput)
	case errors.Is(err, identity.ErrUserNotFound):
		return fmt.Errorf("user not found: %w", apperror.ErrNotFound)
	case errors.Is(err, identity.ErrInvalidToken):
		return fmt.Errorf("%v: %w", err, apperror.ErrUnauthorized)
	default:
		return fmt.Errorf("%v: %w", err, apperror.ErrInternal)
	}
}
