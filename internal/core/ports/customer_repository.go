package ports

import (
	"context"

	"breakfast/internal/core/domain/model/customer"
	"breakfast/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate,
	// including credit balance movements.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetForOwner retrieves a customer by identifier, scoped to the owning user.
	GetForOwner(ctx context.Context, id, ownerID kernel.UUID) (*customer.Customer, error)

	// GetByAccessToken retrieves the customer holding the given self-service
	// token. Unknown tokens are reported as not found.
	GetByAccessToken(ctx context.Context, token kernel.UUID) (*customer.Customer, error)

	// GetAllByIDs retrieves the customers with the given identifiers.
	// Missing identifiers are reported as not found.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*customer.Customer, error)
}
