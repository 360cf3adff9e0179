package queries

import (
	"errors"
	"time"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrGetPortalSaleQueryIsNotConstructed = errors.New(
	"GetPortalSaleQuery must be created via NewGetPortalSaleQuery constructor",
)

// Portal message codes, translated by the frontend.
const (
	PortalMessageSaleClosed    = "sale_closed"
	PortalMessageInProgress    = "delivery_in_progress"
	PortalMessageSaleCompleted = "sale_completed"
)

// GetPortalSaleQuery fetches one sale as the customer sees it: the catalog
// to order from, their current order, and whether the order window is open.
type GetPortalSaleQuery struct {
	accessToken kernel.UUID
	saleID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPortalSaleQuery creates a query for the customer ordering form.
func NewGetPortalSaleQuery(accessToken, saleID kernel.UUID) (GetPortalSaleQuery, error) {
	if err := errors.Join(accessToken.Validate(), saleID.Validate()); err != nil {
		return GetPortalSaleQuery{}, err
	}

	return GetPortalSaleQuery{
		accessToken: accessToken,
		saleID:      saleID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPortalSaleQuery) Validate() error {
	return q.guard.Validate(ErrGetPortalSaleQueryIsNotConstructed)
}

// AccessToken returns the customer's self-service token.
func (q GetPortalSaleQuery) AccessToken() kernel.UUID {
	return q.accessToken
}

// SaleID returns the identifier of the requested sale.
func (q GetPortalSaleQuery) SaleID() kernel.UUID {
	return q.saleID
}

// PortalProduct is one catalog entry the customer can order.
type PortalProduct struct {
	ID        kernel.UUID
	Name      string
	SellPrice float64
}

// PortalOrderLine is one line of the customer's current order.
type PortalOrderLine struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

// GetPortalSaleQueryResponse is the read model for the ordering form.
// Message carries a portal message code when the sale no longer accepts
// changes, empty otherwise.
type GetPortalSaleQueryResponse struct {
	SaleID       kernel.UUID
	DeliveryDate time.Time
	Status       string
	IsOpen       bool
	CutoffAt     time.Time
	CustomerID   kernel.UUID
	CustomerName string
	Products     []PortalProduct
	CurrentOrder []PortalOrderLine
	OrderTotal   float64
	Message      string
}
