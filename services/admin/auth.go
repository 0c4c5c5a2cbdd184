package admin

import (
	"context"
	"fmt"
	"time"

	"terravista/models"
	"terravista/utils"

	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is how long an admin session token stays valid.
const tokenDuration = 24 * time.Hour

// Authenticate checks the credentials against the admin_users collection and
// returns the account plus a signed session token.
func (s *DefaultAuthService) Authenticate(ctx context.Context, email, password string) (*models.AdminUser, string, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up admin user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateAdminToken(user.ID, user.Email, tokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign admin token: %w", err)
	}
	return user, token, nil
}

// IsAdmin reports whether the id still belongs to an admin account. The
// middleware calls this on every request so a removed admin loses access
// even with an unexpired token.
func (s *DefaultAuthService) IsAdmin(ctx context.Context, id string) (bool, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}
