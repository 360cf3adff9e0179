package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"breakfast/internal/core/domain/model/kernel"
)

// GetProductsQueryHandler fetches the product catalog from the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for product list queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the product list query, ordered by name.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, buy_price, sell_price
		FROM products
		WHERE owner_id = ?
		ORDER BY LOWER(name), id
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetProductsQueryResponse, 0)

	for rows.Next() {
		var (
			id      uuid.UUID
			product GetProductsQueryResponse
		)

		if err = rows.Scan(&id, &product.Name, &product.BuyPrice, &product.SellPrice); err != nil {
			return nil, err
		}

		if product.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		product.Margin = product.SellPrice - product.BuyPrice

		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
