package admin

import (
	"context"
	"testing"

	"terravista/config"
	"terravista/models"
	"terravista/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	users map[string]*models.AdminUser
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) GetByID(_ context.Context, id string) (*models.AdminUser, error) {
	return f.users[id], nil
}

func (f *fakeAdminRepo) Create(_ context.Context, u *models.AdminUser) error {
	f.users[u.ID] = u
	return nil
}

func newTestService(t *testing.T, password string) (*DefaultAuthService, *fakeAdminRepo) {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeAdminRepo{users: map[string]*models.AdminUser{
		"a1": {ID: "a1", Email: "admin@example.com", PasswordHash: string(hash)},
	}}
	return &DefaultAuthService{Repo: repo}, repo
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t, "correct horse")

	user, token, err := svc.Authenticate(context.Background(), "admin@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "a1", user.ID)
	require.NotEmpty(t, token)

	// The token round-trips through the shared JWT helpers.
	id, err := utils.ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a1", id)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _ := newTestService(t, "correct horse")
	_, _, err := svc.Authenticate(context.Background(), "admin@example.com", "battery staple")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t, "correct horse")
	_, _, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIsAdmin(t *testing.T) {
	svc, repo := newTestService(t, "pw")

	ok, err := svc.IsAdmin(context.Background(), "a1")
	require.NoError(t, err)
	assert.True(t, ok)

	delete(repo.users, "a1")
	ok, err = svc.IsAdmin(context.Background(), "a1")
	require.NoError(t, err)
	assert.False(t, ok)
}
