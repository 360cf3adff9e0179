package queries

import (
	"errors"
	"time"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrGetSaleStateQueryIsNotConstructed = errors.New(
	"GetSaleStateQuery must be created via NewGetSaleStateQuery constructor",
)

// GetSaleStateQuery retrieves one sale with its items, for the order form
// and the sale detail screen.
type GetSaleStateQuery struct {
	saleID  kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSaleStateQuery creates a query to fetch one sale's full state.
func NewGetSaleStateQuery(saleID, ownerID kernel.UUID) (GetSaleStateQuery, error) {
	if err := errors.Join(saleID.Validate(), ownerID.Validate()); err != nil {
		return GetSaleStateQuery{}, err
	}

	return GetSaleStateQuery{
		saleID:  saleID,
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSaleStateQuery) Validate() error {
	return q.guard.Validate(ErrGetSaleStateQueryIsNotConstructed)
}

// SaleID returns the identifier of the requested sale.
func (q GetSaleStateQuery) SaleID() kernel.UUID {
	return q.saleID
}

// OwnerID returns the identifier of the requesting user.
func (q GetSaleStateQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// SaleItemResponse is the read model for one product line.
type SaleItemResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	ProductID    kernel.UUID
	ProductName  string
	Quantity     int
	SellPrice    float64
	LineTotal    float64
}

// GetSaleStateQueryResponse is the detail read model for one sale.
type GetSaleStateQueryResponse struct {
	ID             kernel.UUID
	DeliveryDate   time.Time
	Status         string
	IsOpen         bool
	CutoffAt       time.Time
	HoursRemaining float64
	TotalExpected  float64
	Items          []SaleItemResponse
}
