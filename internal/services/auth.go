package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/statusvillain/statusvillain/internal/common"
	"github.com/statusvillain/statusvillain/internal/passwordx"
	"github.com/statusvillain/statusvillain/internal/repositories/accounts"
)

// AuthService verifies login credentials against stored accounts.
type AuthService struct {
	accounts accounts.Repository
}

// NewAuthService constructs an AuthService over the given repository.
func NewAuthService(repo accounts.Repository) *AuthService {
	return &AuthService{accounts: repo}
}

// Authenticate looks the account up by exact (email, username) match and
// verifies the password against the stored form. The verdict does not
// distinguish an unknown login from a wrong password. The error return is
// reserved for storage failures.
func (s *AuthService) Authenticate(ctx context.Context, email, username, rawPassword string) (bool, error) {
	account, err := s.accounts.GetByLogin(ctx, email, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up account: %w", err)
	}
	return passwordx.Verify(account.Password, rawPassword), nil
}
