package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"anoa.com/scholarshipapi/internal/entity"
	"anoa.com/scholarshipapi/internal/modules/university/dto"
	"anoa.com/scholarshipapi/internal/modules/university/repository"
	"anoa.com/scholarshipapi/pkg/apperror"
)

type UniversityService interface {
	ListUniversities(ctx context.Context) ([]*entity.University, error)
	// GetUniversityByID returns (nil, nil) for an unknown ID.
	GetUniversityByID(ctx context.Context, id string) (*entity.University, error)
	CreateUniversity(ctx context.Context, input dto.CreateUniversityInput) (*entity.University, error)
	SeedUniversities(ctx context.Context) error
}

type universityService struct {
	repo repository.UniversityRepository
}

func NewUniversityService(repo repository.UniversityRepository) UniversityService {
	return &universityService{repo: repo}
}

func (s *universityService) ListUniversities(ctx context.Context) ([]*entity.University, error) {
	return s.repo.FindAllActive(ctx)
}

func (s *universityService) GetUniversityByID(ctx context.Context, id string) (*entity.University, error) {
	university, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return university, nil
}

func (s *universityService) CreateUniversity(ctx context.Context, input dto.CreateUniversityInput) (*entity.University, error) {
	now := time.Now().UTC()
	university := &entity.University{
		Name:      input.Name,
		Acronym:   input.Acronym,
		City:      input.City,
		State:     input.State,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, university); err != nil {
		return nil, fmt.Errorf("create university: %w", err)
	}
	return university, nil
}

// SeedUniversities inserts the fixed catalog with fresh store IDs. Calling it
// twice duplicates every record; there is no dedup pass.
func (s *universityService) SeedUniversities(ctx context.Context) error {
	now := time.Now().UTC()
	seed := []entity.University{
		{Name: "Universidade de São Paulo", Acronym: "USP", City: "São Paulo", State: "SP"},
		{Name: "Universidade Federal do Rio de Janeiro", Acronym: "UFRJ", City: "Rio de Janeiro", State: "RJ"},
		{Name: "Universidade Federal de Minas Gerais", Acronym: "UFMG", City: "Belo Horizonte", State: "MG"},
		{Name: "Universidade Estadual de Campinas", Acronym: "UNICAMP", City: "Campinas", State: "SP"},
		{Name: "Universidade Federal do Rio Grande do Sul", Acronym: "UFRGS", City: "Porto Alegre", State: "RS"},
	}

	for i := range seed {
		seed[i].Active = true
		seed[i].CreatedAt = now
		seed[i].UpdatedAt = now
		if err := s.repo.Create(ctx, &seed[i]); err != nil {
			return fmt.Errorf("seed university %q: %w", seed[i].Name, err)
		}
	}

	slog.Info("university seed created", "count", len(seed))
	return nil
}
