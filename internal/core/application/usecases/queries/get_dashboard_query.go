package queries

import (
	"errors"
	"time"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery requests the business summary for one account.
// The optional date range bounds the revenue aggregates by delivery date;
// zero bounds leave that side open.
type GetDashboardQuery struct {
	ownerID kernel.UUID
	from    time.Time
	to      time.Time

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a query for the account dashboard.
func NewGetDashboardQuery(ownerID kernel.UUID, from, to time.Time) (GetDashboardQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetDashboardQuery{}, err
	}

	return GetDashboardQuery{
		ownerID: ownerID,
		from:    from,
		to:      to,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// OwnerID returns the identifier of the requesting user.
func (q GetDashboardQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// From returns the lower delivery-date bound, zero when open.
func (q GetDashboardQuery) From() time.Time {
	return q.from
}

// To returns the upper delivery-date bound, zero when open.
func (q GetDashboardQuery) To() time.Time {
	return q.to
}

// GetDashboardQueryResponse aggregates an account's activity. Collected and
// credit figures only count completed delivery stops; revenue and benefit
// sum the items of completed sales in the requested range.
type GetDashboardQueryResponse struct {
	CustomerCount      int
	ProductCount       int
	DraftSales         int
	ClosedSales        int
	InProgressSales    int
	CompletedSales     int
	TotalRevenue       float64
	TotalBenefit       float64
	TotalCollected     float64
	TotalCreditApplied float64
	OutstandingCredit  float64
}
