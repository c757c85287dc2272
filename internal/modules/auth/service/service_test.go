package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anoa.com/scholarshipapi/internal/entity"
	"anoa.com/scholarshipapi/internal/identity"
	"anoa.com/scholarshipapi/internal/modules/auth/dto"
	"anoa.com/scholarshipapi/pkg/apperror"
)

type fakeGateway struct {
	byUID   map[string]*identity.User
	byEmail map[string]*identity.User

	createCalls int
	deleteCalls int
	linkCalls   int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		byUID:   make(map[string]*identity.User),
		byEmail: make(map[string]*identity.User),
	}
}

func (g *fakeGateway) addUser(email string, verified bool) *identity.User {
	u := &identity.User{UID: uuid.NewString(), Email: email, EmailVerified: verified}
	g.byUID[u.UID] = u
	g.byEmail[u.Email] = u
	return u
}

func (g *fakeGateway) CreateUser(_ context.Context, params identity.CreateUserParams) (*identity.User, error) {
	g.createCalls++
	if _, exists := g.byEmail[params.Email]; exists {
		return nil, identity.ErrEmailExists
	}
	u := &identity.User{UID: uuid.NewString(), Email: params.Email, DisplayName: params.DisplayName}
	g.byUID[u.UID] = u
	g.byEmail[u.Email] = u
	return u, nil
}

func (g *fakeGateway) GetUser(_ context.Context, uid string) (*identity.User, error) {
	u, ok := g.byUID[uid]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return u, nil
}

func (g *fakeGateway) GetUserByEmail(_ context.Context, email string) (*identity.User, error) {
	u, ok := g.byEmail[email]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return u, nil
}

func (g *fakeGateway) DeleteUser(_ context.Context, uid string) error {
	g.deleteCalls++
	u, ok := g.byUID[uid]
	if !ok {
		return identity.ErrUserNotFound
	}
	delete(g.byEmail, u.Email)
	delete(g.byUID, uid)
	return nil
}

func (g *fakeGateway) VerifyIDToken(_ context.Context, idToken string) (*identity.Token, error) {
	u, ok := g.byUID[idToken]
	if !ok {
		return nil, identity.ErrInvalidToken
	}
	return &identity.Token{UID: u.UID, Email: u.Email}, nil
}

func (g *fakeGateway) CustomToken(_ context.Context, uid string) (string, error) {
	return "custom-token-" + uid, nil
}

func (g *fakeGateway) EmailVerificationLink(_ context.Context, email string) (string, error) {
	g.linkCalls++
	return "https://verify.example.com/" + email, nil
}

type fakeUserRepo struct {
	users       map[string]*entity.User
	saveCalls   int
	deleteCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Save(_ context.Context, user *entity.User) error {
	r.saveCalls++
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
	u, ok := r.users[uid]
	if !ok {
		return apperror.ErrNotFound
	}
	u.EmailVerified = true
	u.UpdatedAt = at
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, uid string) error {
	r.deleteCalls++
	delete(r.users, uid)
	return nil
}

func TestRegisterInvalidRolePerformsNoWrites(t *testing.T) {
	gw := newFakeGateway()
	repo := newFakeUserRepo()
	svc := NewAuthService(gw, repo)

	_, err := svc.Register(context.Background(), dto.RegisterInput{
		Email:    "someone@example.com",
		Password: "secret123",
		Role:     entity.Role("admin"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Zero(t, gw.createCalls)
	assert.Zero(t, repo.saveCalls)
}

func TestRegisterStudentSetsProfileCompletedFalse(t *testing.T) {
	gw := newFakeGateway()
	repo := newFakeUserRepo()
	svc := NewAuthService(gw, repo)

	resp, err := svc.Register(context.Background(), dto.RegisterInput{
		Email:    "student@example.com",
		Password: "secret123",
		Name:     "Maria",
		Role:     entity.RoleStudent,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ProfileCompleted)
	assert.False(t, *resp.ProfileCompleted)
	assert.False(t, resp.EmailVerified)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.VerificationLink)

	stored, err := repo.FindByUID(context.Background(), resp.UID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStudent, stored.Role)
	require.NotNil(t, stored.ProfileCompleted)
	assert.False(t, *stored.ProfileCompleted)
}

func TestRegisterEmployeeNeverSetsProfileCompleted(t *testing.T) {
	gw := newFakeGateway()
	repo := newFakeUserRepo()
	svc := NewAuthService(gw, repo)

	resp, err := svc.Register(context.Background(), dto.RegisterInput{
		Email:    "employee@example.com",
		Password: "secret123",
		Role:     entity.RoleEmployee,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.ProfileCompleted)

	stored, err := repo.FindByUID(context.Background(), resp.UID)
	require.NoError(t, err)
	assert.Nil(t, stored.ProfileCompleted)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	gw := newFakeGateway()
	gw.addUser("taken@example.com", false)
	svc := NewAuthService(gw, newFakeUserRepo())

	_, err := svc.Register(context.Background(), dto.RegisterInput{
		Email:    "taken@example.com",
		Password: "secret123",
		Role:     entity.RoleStudent,
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestLoginUnverifiedEmailForbidden(t *testing.T) {
	gw := newFakeGateway()
	gwUser := gw.addUser("pending@example.com", false)
	repo := newFakeUserRepo()
	repo.users[gwUser.UID] = &entity.User{UID: gwUser.UID, Email: gwUser.Email, Role: entity.RoleStudent}
	svc := NewAuthService(gw, repo)

	_, err := svc.Login(context.Background(), dto.LoginInput{Email: "pending@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestLoginUnknownEmailNotFound(t *testing.T) {
	svc := NewAuthService(newFakeGateway(), newFakeUserRepo())

	_, err := svc.Login(context.Background(), dto.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestLoginVerifiedStudent(t *testing.T) {
	gw := newFakeGateway()
	gwUser := gw.addUser("ok@example.com", true)
	repo := newFakeUserRepo()
	completed := false
	repo.users[gwUser.UID] = &entity.User{
		UID: gwUser.UID, Email: gwUser.Email, Role: entity.RoleStudent, ProfileCompleted: &completed,
	}
	svc := NewAuthService(gw, repo)

	resp, err := svc.Login(context.Background(), dto.LoginInput{Email: "ok@example.com", Password: "whatever"})
	require.NoError(t, err)

	assert.Equal(t, gwUser.UID, resp.UID)
	assert.Equal(t, entity.RoleStudent, resp.Role)
	assert.True(t, resp.EmailVerified)
	require.NotNil(t, resp.ProfileCompleted)
	assert.False(t, *resp.ProfileCompleted)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginEmployeeOmitsProfileCompleted(t *testing.T) {
	gw := newFakeGateway()
	gwUser := gw.addUser("emp@example.com", true)
	repo := newFakeUserRepo()
	repo.users[gwUser.UID] = &entity.User{UID: gwUser.UID, Email: gwUser.Email, Role: entity.RoleEmployee}
	svc := NewAuthService(gw, repo)

	resp, err := svc.Login(context.Background(), dto.LoginInput{Email: "emp@example.com", Password: "whatever"})
	require.NoError(t, err)
	assert.Nil(t, resp.ProfileCompleted)
}

func TestDeleteUserMissingUIDAttemptsBothSides(t *testing.T) {
	gw := newFakeGateway()
	repo := newFakeUserRepo()
	svc := NewAuthService(gw, repo)

	err := svc.DeleteUser(context.Background(), "does-not-exist")

	require.NoError(t, err)
	assert.Equal(t, 1, gw.deleteCalls)
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestDeleteUserRemovesBothRecords(t *testing.T) {
	gw := newFakeGateway()
	gwUser := gw.addUser("bye@example.com", true)
	repo := newFakeUserRepo()
	repo.users[gwUser.UID] = &entity.User{UID: gwUser.UID, Email: gwUser.Email, Role: entity.RoleEmployee}
	svc := NewAuthService(gw, repo)

	require.NoError(t, svc.DeleteUser(context.Background(), gwUser.UID))

	_, err := repo.FindByUID(context.Background(), gwUser.UID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = gw.GetUser(context.Background(), gwUser.UID)
	assert.True(t, errors.Is(err, identity.ErrUserNotFound))
}

func TestResendVerificationAlreadyVerified(t *testing.T) {
	gw := newFakeGateway()
	gw.addUser("done@example.com", true)
	svc := NewAuthService(gw, newFakeUserRepo())

	_, err := svc.ResendVerificationEmail(context.Background(), "done@example.com")

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Zero(t, gw.linkCalls)
}

func TestResendVerificationReturnsFreshLink(t *testing.T) {
	gw := newFakeGateway()
	gw.addUser("pending@example.com", false)
	svc := NewAuthService(gw, newFakeUserRepo())

	link, err := svc.ResendVerificationEmail(context.Background(), "pending@example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, link)
	assert.Equal(t, 1, gw.linkCalls)
}

func TestCheckEmailVerificationWritesBack(t *testing.T) {
	gw := newFakeGateway()
	gwUser := gw.addUser("verified@example.com", true)
	repo := newFakeUserRepo()
	repo.users[gwUser.UID] = &entity.User{UID: gwUser.UID, Email: gwUser.Email, Role: entity.RoleStudent}
	svc := NewAuthService(gw, repo)

	verified, err := svc.CheckEmailVerification(context.Background(), gwUser.UID)
	require.NoError(t, err)
	assert.True(t, verified)
	assert.True(t, repo.users[gwUser.UID].EmailVerified)

	// Write-back is idempotent.
	verified, err = svc.CheckEmailVerification(context.Background(), gwUser.UID)
	require.NoError(t, err)
	assert.True(t, verified)
}

func TestCheckEmailVerificationUnverifiedSkipsWriteBack(t *testing.T) {
	gw := newFakeGateway()
	gwUser := gw.addUser("pending@example.com", false)
	repo := newFakeUserRepo()
	repo.users[gwUser.UID] = &entity.User{UID: gwUser.UID, Email: gwUser.Email, Role: entity.RoleStudent}
	svc := NewAuthService(gw, repo)

	verified, err := svc.CheckEmailVerification(context.Background(), gwUser.UID)

	require.NoError(t, err)
	assert.False(t, verified)
	assert.False(t, repo.users[gwUser.UID].EmailVerified)
}
