package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"breakfast/internal/core/domain/model/kernel"
)

// GetProvidersQueryHandler fetches the supplier directory from the database.
type GetProvidersQueryHandler struct {
	db *gorm.DB
}

// NewGetProvidersQueryHandler creates a handler for supplier list queries.
func NewGetProvidersQueryHandler(db *gorm.DB) GetProvidersQueryHandler {
	return GetProvidersQueryHandler{db: db}
}

// Handle executes the supplier list query, ordered by name.
func (h GetProvidersQueryHandler) Handle(
	ctx context.Context,
	query GetProvidersQuery,
) ([]GetProvidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, phone, address
		FROM providers
		WHERE owner_id = ?
		ORDER BY LOWER(name), id
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	providers := make([]GetProvidersQueryResponse, 0)

	for rows.Next() {
		var (
			id       uuid.UUID
			provider GetProvidersQueryResponse
		)

		if err = rows.Scan(
			&id, &provider.Name, &provider.Email, &provider.Phone, &provider.Address,
		); err != nil {
			return nil, err
		}

		if provider.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		providers = append(providers, provider)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return providers, nil
}
