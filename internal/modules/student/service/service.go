package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"anoa.com/scholarshipapi/internal/entity"
	userRepo "anoa.com/scholarshipapi/internal/modules/auth/repository"
	"anoa.com/scholarshipapi/internal/modules/student/dto"
	"anoa.com/scholarshipapi/internal/modules/student/repository"
	"anoa.com/scholarshipapi/pkg/apperror"
)

type StudentService interface {
	CreateOrUpdateProfile(ctx context.Context, uid string, input dto.ProfileInput) (*entity.StudentProfile, error)
	// GetProfile returns (nil, nil) when no profile exists yet; callers
	// distinguish that from a failure.
	GetProfile(ctx context.Context, uid string) (*entity.StudentProfile, error)
}

type studentService struct {
	profiles repository.ProfileRepository
	users    userRepo.UserRepository
}

func NewStudentService(profiles repository.ProfileRepository, users userRepo.UserRepository) StudentService {
	return &studentService{profiles: profiles, users: users}
}

// CreateOrUpdateProfile saves the whole profile as one replacement document.
// A prior profile keeps its original creation timestamp; a successful save
// flips the owning user's profileCompleted flag.
func (s *studentService) CreateOrUpdateProfile(ctx context.Context, uid string, input dto.ProfileInput) (*entity.StudentProfile, error) {
	user, err := s.users.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if user.Role != entity.RoleStudent {
		return nil, fmt.Errorf("only students can have a student profile: %w", apperror.ErrForbidden)
	}

	if err := validateProfile(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := &entity.StudentProfile{
		UserID:           uid,
		PersonalData:     input.PersonalData,
		Address:          input.Address,
		FamilyData:       input.FamilyData,
		AcademicData:     input.AcademicData,
		Scholarship:      input.Scholarship,
		Documents:        input.Documents,
		ProfileCompleted: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	existing, err := s.profiles.FindByUID(ctx, uid)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		profile.CreatedAt = existing.CreatedAt
	}

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	if err := s.users.SetProfileCompleted(ctx, uid, now); err != nil {
		return nil, fmt.Errorf("mark profile completed: %w", err)
	}

	slog.Info("student profile saved", "uid", uid)
	return profile, nil
}

func (s *studentService) GetProfile(ctx context.Context, uid string) (*entity.StudentProfile, error) {
	profile, err := s.profiles.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

// validateProfile enforces the cross-field rules that binding tags cannot
// express. Unlike the request validator this path short-circuits on the first
// violation.
func validateProfile(input dto.ProfileInput) error {
	if strings.TrimSpace(input.PersonalData.FullName) == "" {
		return invalid("full name is required")
	}
	if strings.TrimSpace(input.PersonalData.RG) == "" {
		return invalid("rg is required")
	}
	if !validDate(input.PersonalData.BirthDate) {
		return invalid("birth date must be a valid date")
	}
	if strings.TrimSpace(input.PersonalData.Phone) == "" {
		return invalid("phone is required")
	}

	if strings.TrimSpace(input.Address.Street) == "" {
		return invalid("street is required")
	}
	if strings.TrimSpace(input.Address.Number) == "" {
		return invalid("address number is required")
	}
	if strings.TrimSpace(input.Address.Neighborhood) == "" {
		return invalid("neighborhood is required")
	}
	if strings.TrimSpace(input.Address.State) == "" {
		return invalid("state is required")
	}
	if strings.TrimSpace(input.Address.ZipCode) == "" {
		return invalid("zip code is required")
	}

	if boolVal(input.FamilyData.HasFather) && strings.TrimSpace(input.FamilyData.FatherName) == "" {
		return invalid("father name is required when hasFather is true")
	}
	if boolVal(input.FamilyData.HasMother) && strings.TrimSpace(input.FamilyData.MotherName) == "" {
		return invalid("mother name is required when hasMother is true")
	}

	academic := input.AcademicData
	if strings.TrimSpace(academic.UniversityID) == "" {
		return invalid("university is required")
	}
	if academic.CurrentSemester < 1 {
		return invalid("current semester must be at least 1")
	}
	if academic.TotalSemesters < 1 {
		return invalid("total semesters must be at least 1")
	}
	if academic.CurrentSemester > academic.TotalSemesters {
		return invalid("current semester cannot be greater than total semesters")
	}
	if academic.ExpectedGraduationYear < time.Now().Year() {
		return invalid("expected graduation year cannot be in the past")
	}
	if len(academic.WeeklyFrequency) == 0 {
		return invalid("weekly frequency must have at least one day")
	}
	if academic.CourseSchedule.StartTime == "" || academic.CourseSchedule.EndTime == "" {
		return invalid("course schedule is required")
	}

	if boolVal(input.Scholarship.HasScholarship) && input.Scholarship.ScholarshipType == "" {
		return invalid("scholarship type is required when hasScholarship is true")
	}

	if !boolVal(input.Documents.TermsAccepted) {
		return invalid("the responsibility terms must be accepted")
	}

	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("%s: %w", msg, apperror.ErrInvalidInput)
}

func boolVal(b *bool) bool {
	return b != nil && *b
}

func validDate(s string) bool {
	if s == "" {
		return false
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
