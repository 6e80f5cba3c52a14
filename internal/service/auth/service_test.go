package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffloop/hrm-backend-go/internal/domain/auth"
	"github.com/staffloop/hrm-backend-go/internal/domain/user"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
	"github.com/staffloop/hrm-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeUserRepo) LinkEmployee(_ context.Context, userID, employeeID string) error {
	u, ok := f.users[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.EmployeeID = &employeeID
	f.users[userID] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func newTestService(t *testing.T) (auth.AuthService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	jwtService := jwt.NewJWTService("test-secret-key", "15m", "168h")
	svc := NewAuthService(database.NewDB(nil, time.Second), repo, jwtService)
	return svc, repo
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _ := newTestService(t)

	registered, err := svc.Register(context.Background(), &auth.RegisterRequest{
		Email:    "hr@staffloop.dev",
		Password: "s3cret-pass",
		Role:     string(user.RoleHR),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.NotEmpty(t, registered.RefreshToken)

	loggedIn, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "hr@staffloop.dev",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.AccessToken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), &auth.RegisterRequest{
		Email:    "hr@staffloop.dev",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &auth.RegisterRequest{
		Email:    "hr@staffloop.dev",
		Password: "another-pass",
	})
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyUsed)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(context.Background(), &auth.RegisterRequest{
		Email:    "hr@staffloop.dev",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "hr@staffloop.dev",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "ghost@staffloop.dev",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Register(context.Background(), &auth.RegisterRequest{
		Email:    "emp@staffloop.dev",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	var id string
	for _, u := range repo.users {
		id = u.ID
	}

	me, err := svc.Me(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "emp@staffloop.dev", me.Email)
	assert.Equal(t, string(user.RoleEmployee), me.Role)
}
