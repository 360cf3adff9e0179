package queries

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrGetDeliveryProgressQueryIsNotConstructed = errors.New(
	"GetDeliveryProgressQuery must be created via NewGetDeliveryProgressQuery constructor",
)

// GetDeliveryProgressQuery requests the completion summary of one sale's
// delivery run.
type GetDeliveryProgressQuery struct {
	saleID  kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryProgressQuery creates a query to fetch delivery progress.
func NewGetDeliveryProgressQuery(saleID, ownerID kernel.UUID) (GetDeliveryProgressQuery, error) {
	if err := errors.Join(saleID.Validate(), ownerID.Validate()); err != nil {
		return GetDeliveryProgressQuery{}, err
	}

	return GetDeliveryProgressQuery{
		saleID:  saleID,
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryProgressQueryIsNotConstructed)
}

// SaleID returns the identifier of the sale being tracked.
func (q GetDeliveryProgressQuery) SaleID() kernel.UUID {
	return q.saleID
}

// OwnerID returns the identifier of the requesting user.
func (q GetDeliveryProgressQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetDeliveryProgressQueryResponse summarizes how far a delivery run has
// advanced. PercentComplete counts completed and skipped stops against the
// total, rounded to one decimal place. NextCustomerID is set when a stop
// carries the next-delivery marker.
type GetDeliveryProgressQueryResponse struct {
	SaleID             kernel.UUID
	Status             string
	NextCustomerID     *kernel.UUID
	NextCustomerName   string
	TotalStops         int
	CompletedStops     int
	SkippedStops       int
	PendingStops       int
	PercentComplete    float64
	TotalCollected     float64
	TotalCreditApplied float64
	TotalExpected      float64
	TotalSkippedAmount float64
}
