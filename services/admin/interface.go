package admin

import (
	"context"
	"errors"

	adminRepo "terravista/database/repository/admin"
	"terravista/models"
)

// ErrInvalidCredentials is returned for a bad email/password pair. The
// handler maps it to a generic 401 so the two cases are indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService authenticates back-office users.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.AdminUser, string, error)
	// IsAdmin reports whether the id belongs to a current admin_users record.
	IsAdmin(ctx context.Context, id string) (bool, error)
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Repo adminRepo.AdminUserRepository
}
