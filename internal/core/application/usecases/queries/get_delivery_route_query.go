package queries

import (
	"errors"
	"time"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrGetDeliveryRouteQueryIsNotConstructed = errors.New(
	"GetDeliveryRouteQuery must be created via NewGetDeliveryRouteQuery constructor",
)

// GetDeliveryRouteQuery requests the ordered delivery route of one sale.
type GetDeliveryRouteQuery struct {
	saleID  kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryRouteQuery creates a query to fetch a sale's route.
func NewGetDeliveryRouteQuery(saleID, ownerID kernel.UUID) (GetDeliveryRouteQuery, error) {
	if err := errors.Join(saleID.Validate(), ownerID.Validate()); err != nil {
		return GetDeliveryRouteQuery{}, err
	}

	return GetDeliveryRouteQuery{
		saleID:  saleID,
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryRouteQueryIsNotConstructed)
}

// SaleID returns the identifier of the sale whose route is requested.
func (q GetDeliveryRouteQuery) SaleID() kernel.UUID {
	return q.saleID
}

// OwnerID returns the identifier of the requesting user.
func (q GetDeliveryRouteQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// DeliveryStopResponse is the read model for one customer stop on a route.
// For pending stops, CreditToApply and AmountToCollect preview how the
// customer's current credit balance would settle the expected amount.
type DeliveryStopResponse struct {
	CustomerID      kernel.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	CustomerCredit  float64
	SequenceOrder   int
	Status          string
	IsNext          bool
	AmountExpected  float64
	AmountCollected float64
	CreditApplied   float64
	CreditToApply   float64
	AmountToCollect float64
	SkipReason      string
	CompletedAt     *time.Time
}

// GetDeliveryRouteQueryResponse is the route read model for one sale,
// with stops ordered by sequence.
type GetDeliveryRouteQueryResponse struct {
	SaleID       kernel.UUID
	DeliveryDate time.Time
	Status       string
	Stops        []DeliveryStopResponse
}
