package identity

import (
	"context"
	"fmt"
	"strings"

	"firebase.google.com/go/v4/auth"
)

type firebaseGateway struct {
	client *auth.Client
}

// NewFirebaseGateway adapts a Firebase Auth client to the Gateway interface.
func NewFirebaseGateway(client *auth.Client) Gateway {
	return &firebaseGateway{client: client}
}

func (g *firebaseGateway) CreateUser(ctx context.Context, params CreateUserParams) (*User, error) {
	toCreate := (&auth.UserToCreate{}).
		Email(params.Email).
		Password(params.Password).
		EmailVerified(false)
	if params.DisplayName != "" {
		toCreate = toCreate.DisplayName(params.DisplayName)
	}

	record, err := g.client.CreateUser(ctx, toCreate)
	if err != nil {
		return nil, classifyCreateUserError(err)
	}
	return fromRecord(record), nil
}

func (g *firebaseGateway) GetUser(ctx context.Context, uid string) (*User, error) {
	record, err := g.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrGatewayInternal, err)
	}
	return fromRecord(record), nil
}

func (g *firebaseGateway) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	record, err := g.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrGatewayInternal, err)
	}
	return fromRecord(record), nil
}

func (g *firebaseGateway) DeleteUser(ctx context.Context, uid string) error {
	if err := g.client.DeleteUser(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: %v", ErrGatewayInternal, err)
	}
	return nil
}

func (g *firebaseGateway) VerifyIDToken(ctx context.Context, idToken string) (*Token, error) {
	decoded, err := g.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, _ := decoded.Claims["email"].(string)
	return &Token{UID: decoded.UID, Email: email}, nil
}

func (g *firebaseGateway) CustomToken(ctx context.Context, uid string) (string, error) {
	token, err := g.client.CustomToken(ctx, uid)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGatewayInternal, err)
	}
	return token, nil
}

func (g *firebaseGateway) EmailVerificationLink(ctx context.Context, email string) (string, error) {
	link, err := g.client.EmailVerificationLink(ctx, email)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGatewayInternal, err)
	}
	return link, nil
}

// classifyCreateUserError maps the SDK's creation failures onto the gateway
// sentinels. The SDK rejects malformed emails and short passwords locally
// with plain errors, hence the message checks.
func classifyCreateUserError(err error) error {
	msg := err.Error()
	switch {
	case auth.IsEmailAlreadyExists(err):
		return ErrEmailExists
	case strings.Contains(msg, "malformed email"):
		return ErrInvalidEmail
	case strings.Contains(msg, "password must be"):
		return ErrWeakPassword
	default:
		return fmt.Errorf("%w: %v", ErrGatewayInternal, err)
	}
}

func fromRecord(record *auth.UserRecord) *User {
	return &User{
		UID:           record.UID,
		Email:         record.Email,
		DisplayName:   record.DisplayName,
		EmailVerified: record.EmailVerified,
	}
}
