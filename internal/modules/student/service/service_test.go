package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anoa.com/scholarshipapi/internal/entity"
	"anoa.com/scholarshipapi/internal/modules/student/dto"
	"anoa.com/scholarshipapi/pkg/apperror"
)

type fakeProfileRepo struct {
	profiles map[string]*entity.StudentProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*entity.StudentProfile)}
}

func (r *fakeProfileRepo) Save(_ context.Context, profile *entity.StudentProfile) error {
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *fakeProfileRepo) FindByUID(_ context.Context, uid string) (*entity.StudentProfile, error) {
	p, ok := r.profiles[uid]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Save(_ context.Context, user *entity.User) error {
	copied := *user
	r.users[user.UID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByUID(_ context.Context, uid string) (*entity.User, error) {
	u, ok := r.users[uid]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) SetProfileCompleted(_ context.Context, uid string, at time.Time) error {
	u, ok := r.users[uid]
	if !ok {
		return apperror.ErrNotFound
	}
	completed := true
	u.ProfileCompleted = &completed
	u.UpdatedAt = at
	return nil
}

func (r *fakeUserRepo) SetEmailVerified(_ context.Context, uid string, at time.Time) error {
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, uid string) error {
	delete(r.users, uid)
	return nil
}

func boolPtr(b bool) *bool { return &b }

func validInput() dto.ProfileInput {
	return dto.ProfileInput{
		PersonalData: entity.PersonalData{
			FullName:  "Maria da Silva",
			RG:        "12.345.678-9",
			BirthDate: "2002-03-15",
			Phone:     "+55 11 91234-5678",
		},
		Address: entity.AddressData{
			Street:       "Rua das Flores",
			Number:       "123",
			Neighborhood: "Centro",
			City:         "São Paulo",
			State:        "SP",
			ZipCode:      "01000-000",
		},
		FamilyData: entity.FamilyData{
			HasFather:     boolPtr(true),
			FatherName:    "José da Silva",
			HasMother:     boolPtr(true),
			MotherName:    "Ana da Silva",
			MaritalStatus: entity.MaritalSingle,
			ResidenceType: entity.ResidenceRented,
		},
		AcademicData: entity.AcademicData{
			UniversityID:           "univ-1",
			CurrentSemester:        3,
			TotalSemesters:         8,
			ExpectedGraduationYear: time.Now().Year() + 2,
			WeeklyFrequency:        []string{"monday", "wednesday", "friday"},
			CoursePeriod:           entity.PeriodEvening,
			CourseSchedule:         entity.CourseSchedule{StartTime: "19:00", EndTime: "22:30"},
		},
		Scholarship: entity.ScholarshipData{
			HasScholarship:  boolPtr(true),
			ScholarshipType: entity.ScholarshipProuni,
		},
		Documents: entity.DocumentsData{
			TermsAccepted: boolPtr(true),
		},
	}
}

func newTestService(role entity.Role) (StudentService, *fakeProfileRepo, *fakeUserRepo) {
	profiles := newFakeProfileRepo()
	users := newFakeUserRepo()
	users.users["uid-1"] = &entity.User{UID: "uid-1", Email: "s@example.com", Role: role}
	return NewStudentService(profiles, users), profiles, users
}

func TestSaveProfileUnknownUser(t *testing.T) {
	svc := NewStudentService(newFakeProfileRepo(), newFakeUserRepo())

	_, err := svc.CreateOrUpdateProfile(context.Background(), "ghost", validInput())

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSaveProfileEmployeeForbidden(t *testing.T) {
	svc, _, _ := newTestService(entity.RoleEmployee)

	_, err := svc.CreateOrUpdateProfile(context.Background(), "uid-1", validInput())

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestSaveProfileValidationRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.ProfileInput)
	}{
		{"current semester above total", func(in *dto.ProfileInput) {
			in.AcademicData.CurrentSemester = 9
			in.AcademicData.TotalSemesters = 8
		}},
		{"graduation year in the past", func(in *dto.ProfileInput) {
			in.AcademicData.ExpectedGraduationYear = time.Now().Year() - 1
		}},
		{"empty weekly frequency", func(in *dto.ProfileInput) {
			in.AcademicData.WeeklyFrequency = nil
		}},
		{"terms not accepted", func(in *dto.ProfileInput) {
			in.Documents.TermsAccepted = boolPtr(false)
		}},
		{"father name missing", func(in *dto.ProfileInput) {
			in.FamilyData.HasFather = boolPtr(true)
			in.FamilyData.FatherName = ""
		}},
		{"mother name missing", func(in *dto.ProfileInput) {
			in.FamilyData.HasMother = boolPtr(true)
			in.FamilyData.MotherName = ""
		}},
		{"scholarship type missing", func(in *dto.ProfileInput) {
			in.Scholarship.HasScholarship = boolPtr(true)
			in.Scholarship.ScholarshipType = ""
		}},
		{"missing course schedule", func(in *dto.ProfileInput) {
			in.AcademicData.CourseSchedule.StartTime = ""
		}},
		{"invalid birth date", func(in *dto.ProfileInput) {
			in.PersonalData.BirthDate = "not-a-date"
		}},
		{"zero current semester", func(in *dto.ProfileInput) {
			in.AcademicData.CurrentSemester = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, profiles, _ := newTestService(entity.RoleStudent)
			input := validInput()
			tt.mutate(&input)

			_, err := svc.CreateOrUpdateProfile(context.Background(), "uid-1", input)

			assert.ErrorIs(t, err, apperror.ErrInvalidInput)
			assert.Empty(t, profiles.profiles)
		})
	}
}

func TestSaveProfileMarksUserCompleted(t *testing.T) {
	svc, profiles, users := newTestService(entity.RoleStudent)

	profile, err := svc.CreateOrUpdateProfile(context.Background(), "uid-1", validInput())
	require.NoError(t, err)

	assert.True(t, profile.ProfileCompleted)
	assert.Equal(t, "uid-1", profile.UserID)
	require.Contains(t, profiles.profiles, "uid-1")

	owner := users.users["uid-1"]
	require.NotNil(t, owner.ProfileCompleted)
	assert.True(t, *owner.ProfileCompleted)
}

func TestSaveProfileTwicePreservesCreatedAt(t *testing.T) {
	svc, profiles, _ := newTestService(entity.RoleStudent)

	first, err := svc.CreateOrUpdateProfile(context.Background(), "uid-1", validInput())
	require.NoError(t, err)

	// Age the stored record so the timestamps are distinguishable.
	created := time.Now().UTC().Add(-48 * time.Hour)
	profiles.profiles["uid-1"].CreatedAt = created

	second, err := svc.CreateOrUpdateProfile(context.Background(), "uid-1", validInput())
	require.NoError(t, err)

	assert.Equal(t, created, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(created))
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestGetProfileAbsentIsNotAnError(t *testing.T) {
	svc, _, _ := newTestService(entity.RoleStudent)

	profile, err := svc.GetProfile(context.Background(), "uid-1")

	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestGetProfileReturnsSaved(t *testing.T) {
	svc, _, _ := newTestService(entity.RoleStudent)
	_, err := svc.CreateOrUpdateProfile(context.Background(), "uid-1", validInput())
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), "uid-1")

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Maria da Silva", profile.PersonalData.FullName)
}
