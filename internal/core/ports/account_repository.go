package ports

import (
	"context"

	"breakfast/internal/core/domain/model/account"
	"breakfast/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account. A duplicate email is reported as a
	// conflict via the unique index on the email column.
	Add(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by its lowercased email address.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
