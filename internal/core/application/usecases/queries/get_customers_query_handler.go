package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"breakfast/internal/core/domain/model/kernel"
)

// GetCustomersQueryHandler fetches the customer list from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer list queries.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the customer list query, ordered by name.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, phone, address, notes, credit_balance, access_token
		FROM customers
		WHERE owner_id = ?
		ORDER BY LOWER(name), id
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]GetCustomersQueryResponse, 0)

	for rows.Next() {
		var (
			id          uuid.UUID
			accessToken uuid.UUID
			customer    GetCustomersQueryResponse
		)

		if err = rows.Scan(
			&id, &customer.Name, &customer.Phone, &customer.Address,
			&customer.Notes, &customer.CreditBalance, &accessToken,
		); err != nil {
			return nil, err
		}

		if customer.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if customer.AccessToken, err = kernel.UUIDFromBytes(accessToken[:]); err != nil {
			return nil, err
		}

		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
