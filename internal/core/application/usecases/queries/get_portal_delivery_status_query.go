package queries

import (
	"errors"
	"time"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrGetPortalDeliveryStatusQueryIsNotConstructed = errors.New(
	"GetPortalDeliveryStatusQuery must be created via NewGetPortalDeliveryStatusQuery constructor",
)

// GetPortalDeliveryStatusQuery asks where the customer stands in a sale's
// delivery run: their stop status, queue position, and a rough ETA.
type GetPortalDeliveryStatusQuery struct {
	accessToken kernel.UUID
	saleID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPortalDeliveryStatusQuery creates a query for the customer's
// delivery tracking view.
func NewGetPortalDeliveryStatusQuery(accessToken, saleID kernel.UUID) (GetPortalDeliveryStatusQuery, error) {
	if err := errors.Join(accessToken.Validate(), saleID.Validate()); err != nil {
		return GetPortalDeliveryStatusQuery{}, err
	}

	return GetPortalDeliveryStatusQuery{
		accessToken: accessToken,
		saleID:      saleID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPortalDeliveryStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPortalDeliveryStatusQueryIsNotConstructed)
}

// AccessToken returns the customer's self-service token.
func (q GetPortalDeliveryStatusQuery) AccessToken() kernel.UUID {
	return q.accessToken
}

// SaleID returns the identifier of the sale being tracked.
func (q GetPortalDeliveryStatusQuery) SaleID() kernel.UUID {
	return q.saleID
}

// GetPortalDeliveryStatusQueryResponse is the customer's view of their
// delivery. Queue fields are only set while the stop is pending during an
// active run; completion fields only after the stop settled.
type GetPortalDeliveryStatusQueryResponse struct {
	SaleStatus       string
	StepStatus       string
	IsNext           bool
	PositionInQueue  *int
	DeliveriesAhead  *int
	EstimatedMinutes *int
	CompletedAt      *time.Time
	AmountCollected  *float64
	SkipReason       string
}
