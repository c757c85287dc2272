package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"anoa.com/scholarshipapi/internal/entity"
	"anoa.com/scholarshipapi/pkg/apperror"
)

const profilesCollection = "student_profiles"

type ProfileRepository interface {
	Save(ctx context.Context, profile *entity.StudentProfile) error
	FindByUID(ctx context.Context, uid string) (*entity.StudentProfile, error)
}

type profileRepository struct {
	client *firestore.Client
}

func NewProfileRepository(client *firestore.Client) ProfileRepository {
	return &profileRepository{client: client}
}

// Save writes the profile as a full replacement document keyed by the owning
// user's UID.
func (r *profileRepository) Save(ctx context.Context, profile *entity.StudentProfile) error {
	_, err := r.client.Collection(profilesCollection).Doc(profile.UserID).Set(ctx, profile)
	return err
}

func (r *profileRepository) FindByUID(ctx context.Context, uid string) (*entity.StudentProfile, error) {
	snap, err := r.client.Collection(profilesCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("profile %s: %w", uid, apperror.ErrNotFound)
		}
		return nil, err
	}

	var profile entity.StudentProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", uid, err)
	}
	return &profile, nil
}
