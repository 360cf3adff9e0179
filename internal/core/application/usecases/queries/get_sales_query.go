// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly with raw SQL, bypassing the
// aggregates, and return flat read models shaped for the HTTP layer.
package queries

import (
	"errors"
	"time"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/core/domain/model/sale"
	"breakfast/internal/pkg/guard"
)

var ErrGetSalesQueryIsNotConstructed = errors.New(
	"GetSalesQuery must be created via NewGetSalesQuery constructor",
)

// GetSalesQuery retrieves the sales of one owner, optionally filtered by
// status and delivery date range.
//
// Example:
//
//	query, err := NewGetSalesQuery(ownerID, "draft", from, to)
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//
//	handler := NewGetSalesQueryHandler(db, sale.DefaultCutoffHours, time.Now)
//	sales, err := handler.Handle(ctx, query)
type GetSalesQuery struct {
	ownerID      kernel.UUID
	statusFilter sale.Status
	from         time.Time
	to           time.Time

	guard guard.ConstructorGuard
}

// NewGetSalesQuery creates a query to list an owner's sales.
// statusFilter may be empty to include every status; from and to may be zero
// to leave the range open on that side.
func NewGetSalesQuery(ownerID kernel.UUID, statusFilter string, from, to time.Time) (GetSalesQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetSalesQuery{}, err
	}

	query := GetSalesQuery{
		ownerID: ownerID,
		from:    from,
		to:      to,
		guard:   guard.NewConstructorGuard(),
	}

	if statusFilter != "" {
		status, err := sale.StatusFromString(statusFilter)
		if err != nil {
			return GetSalesQuery{}, err
		}
		query.statusFilter = status
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSalesQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesQueryIsNotConstructed)
}

// OwnerID returns the owner whose sales are listed.
func (q GetSalesQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// StatusFilter returns the requested status, or sale.StatusUnknown for all.
func (q GetSalesQuery) StatusFilter() sale.Status {
	return q.statusFilter
}

// From returns the inclusive lower bound of the delivery date range.
func (q GetSalesQuery) From() time.Time {
	return q.from
}

// To returns the inclusive upper bound of the delivery date range.
func (q GetSalesQuery) To() time.Time {
	return q.to
}

// GetSalesQueryResponse is the list read model for one sale.
// IsOpen reports whether the sale still accepts orders under the cutoff
// policy at the time the query ran.
type GetSalesQueryResponse struct {
	ID            kernel.UUID
	DeliveryDate  time.Time
	Status        string
	ItemCount     int
	TotalExpected float64
	TotalBenefit  float64
	IsOpen        bool
	CutoffAt      time.Time
}
