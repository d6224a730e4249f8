// Package services contains the application services: account registration,
// authentication, and status report history/submission. Business negatives
// (duplicate account, rejected login, duplicate report id) are values, not
// panics; only storage failures propagate as errors to treat as fatal.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/statusvillain/statusvillain/internal/common"
	"github.com/statusvillain/statusvillain/internal/models"
	"github.com/statusvillain/statusvillain/internal/passwordx"
	"github.com/statusvillain/statusvillain/internal/repositories/accounts"
)

// ErrDuplicateAccount signals that an account already exists under the given
// email. The caller should tell the user to log in instead.
var ErrDuplicateAccount = errors.New("account already exists")

// AccountService creates account records.
type AccountService struct {
	accounts accounts.Repository
}

// NewAccountService constructs an AccountService over the given repository.
func NewAccountService(repo accounts.Repository) *AccountService {
	return &AccountService{accounts: repo}
}

// Register creates a new account: fresh uuid, hashed password, current UTC
// timestamp, single atomic insert. A duplicate email yields
// ErrDuplicateAccount and leaves the existing account untouched.
func (s *AccountService) Register(ctx context.Context, email, username, firstName, lastName, rawPassword string) (string, error) {
	hashed, err := passwordx.Hash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		ID:        uuid.NewString(),
		Email:     email,
		Username:  username,
		Password:  hashed,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", ErrDuplicateAccount
		}
		return "", fmt.Errorf("failed to create account: %w", err)
	}
	return account.ID, nil
}
