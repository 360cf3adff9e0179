package ports

import (
	"context"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForOwner retrieves a product by identifier, scoped to the owning user.
	GetForOwner(ctx context.Context, id, ownerID kernel.UUID) (*product.Product, error)

	// GetAllByIDs retrieves the products with the given identifiers.
	// Missing identifiers are reported as not found.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
