package ports

import (
	"context"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/provider"
)

// ProviderRepository defines the persistence contract for provider aggregates.
type ProviderRepository interface {
	// Add persists a new provider aggregate to storage.
	// A duplicate email for the same owner is reported as a conflict.
	Add(ctx context.Context, aggregate *provider.Provider) error

	// Update persists changes to an existing provider aggregate.
	Update(ctx context.Context, aggregate *provider.Provider) error

	// Get retrieves a provider aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*provider.Provider, error)

	// GetForOwner retrieves a provider by identifier, scoped to the owning user.
	GetForOwner(ctx context.Context, id, ownerID kernel.UUID) (*provider.Provider, error)

	// Delete removes a provider from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
