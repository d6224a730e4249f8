package accounts

import (
	"context"

	"github.com/statusvillain/statusvillain/internal/models"
)

// Repository describes persistence operations for account records.
type Repository interface {
	// Create inserts a new account. A duplicate email yields
	// common.ErrorAlreadyExists and leaves the existing row untouched.
	Create(ctx context.Context, account *models.Account) error

	// GetByLogin returns the account matching email and username exactly,
	// or common.ErrorNotFound.
	GetByLogin(ctx context.Context, email, username string) (*models.Account, error)
}
