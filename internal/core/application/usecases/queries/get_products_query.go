package queries

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery lists all products of one account.
type GetProductsQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to list an account's products.
func NewGetProductsQuery(ownerID kernel.UUID) (GetProductsQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetProductsQuery{}, err
	}

	return GetProductsQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// OwnerID returns the identifier of the requesting user.
func (q GetProductsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetProductsQueryResponse is the list read model for one product.
// Margin is the difference between the sell and buy price per unit.
type GetProductsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	BuyPrice  float64
	SellPrice float64
	Margin    float64
}
