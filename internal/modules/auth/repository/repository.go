package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"anoa.com/scholarshipapi/internal/entity"
	"anoa.com/scholarshipapi/pkg/apperror"
)

const usersCollection = "users"

type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	FindByUID(ctx context.Context, uid string) (*entity.User, error)
	SetProfileCompleted(ctx context.Context, uid string, at time.Time) error
	SetEmailVerified(ctx context.Context, uid string, at time.Time) error
	Delete(ctx context.Context, uid string) error
}

type userRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) Save(ctx context.Context, user *entity.User) error {
	_, err := r.client.Collection(usersCollection).Doc(user.UID).Set(ctx, user)
	return err
}

func (r *userRepository) FindByUID(ctx context.Context, uid string) (*entity.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user %s: %w", uid, apperror.ErrNotFound)
		}
		return nil, err
	}

	var user entity.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", uid, err)
	}
	return &user, nil
}

func (r *userRepository) SetProfileCompleted(ctx context.Context, uid string, at time.Time) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "profileCompleted", Value: true},
		{Path: "updatedAt", Value: at},
	})
	return err
}

func (r *userRepository) SetEmailVerified(ctx context.Context, uid string, at time.Time) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "emailVerified", Value: true},
		{Path: "updatedAt", Value: at},
	})
	return err
}

// Delete is a no-op when the document is already gone; the store treats
// deleting a missing document as success.
func (r *userRepository) Delete(ctx context.Context, uid string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Delete(ctx)
	return err
}
