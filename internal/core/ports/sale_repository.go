// Package ports defines repository interfaces for the breakfast domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/sale"
)

// SaleRepository defines the persistence contract for sale aggregates.
// Provides methods for storing, retrieving, and querying sale entities
// with their complete state including items and delivery steps.
type SaleRepository interface {
	// Add persists a new sale aggregate to storage.
	// The sale must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *sale.Sale) error

	// Update persists changes to an existing sale aggregate, including its
	// items and delivery steps, in the current transaction.
	Update(ctx context.Context, aggregate *sale.Sale) error

	// Get retrieves a sale aggregate by its unique identifier.
	// Returns the complete sale with items and delivery steps.
	Get(ctx context.Context, id kernel.UUID) (*sale.Sale, error)

	// GetForOwner retrieves a sale by identifier, scoped to the owning user.
	// Sales of other users are reported as not found rather than forbidden.
	GetForOwner(ctx context.Context, id, ownerID kernel.UUID) (*sale.Sale, error)

	// GetAllDraftBefore retrieves every draft sale whose order cutoff lies
	// before the given instant. Used by the automatic closing job.
	GetAllDraftBefore(ctx context.Context, cutoff time.Time, cutoffHours int) ([]*sale.Sale, error)

	// Delete removes a draft sale and its items from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
