package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"anoa.com/scholarshipapi/internal/entity"
	"anoa.com/scholarshipapi/pkg/apperror"
)

const universitiesCollection = "universities"

type UniversityRepository interface {
	// Create assigns a fresh store ID and writes the record.
	Create(ctx context.Context, university *entity.University) error
	FindByID(ctx context.Context, id string) (*entity.University, error)
	FindAllActive(ctx context.Context) ([]*entity.University, error)
}

type universityRepository struct {
	client *firestore.Client
}

func NewUniversityRepository(client *firestore.Client) UniversityRepository {
	return &universityRepository{client: client}
}

func (r *universityRepository) Create(ctx context.Context, university *entity.University) error {
	doc := r.client.Collection(universitiesCollection).NewDoc()
	university.ID = doc.ID
	_, err := doc.Set(ctx, university)
	return err
}

func (r *universityRepository) FindByID(ctx context.Context, id string) (*entity.University, error) {
	snap, err := r.client.Collection(universitiesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("university %s: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}

	var university entity.University
	if err := snap.DataTo(&university); err != nil {
		return nil, fmt.Errorf("decode university %s: %w", id, err)
	}
	return &university, nil
}

func (r *universityRepository) FindAllActive(ctx context.Context) ([]*entity.University, error) {
	iter := r.client.Collection(universitiesCollection).
		Where("active", "==", true).
		OrderBy("name", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	universities := make([]*entity.University, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var university entity.University
		if err := snap.DataTo(&university); err != nil {
			return nil, fmt.Errorf("decode university %s: %w", snap.Ref.ID, err)
		}
		universities = append(universities, &university)
	}
	return universities, nil
}
