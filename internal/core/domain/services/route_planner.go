package services

import (
	"sort"
	"strings"

	"breakfast/internal/core/domain/model/customer"
	"breakfast/internal/core/domain/model/kernel"
)

// RoutePlanner is a domain service that derives the initial visiting order
// for a sale's delivery route.
//
// Business rules:
//   - Customers are visited in case-insensitive alphabetical order by name
//   - Name ties break on the customer identifier so the plan is deterministic
//   - The plan is only a starting point; the route can be reordered during delivery
//
// Example usage:
//
//	planner := NewRoutePlanner()
//	ordered, err := planner.Plan(customers)
//	if err != nil {
//	    // A customer instance was not properly constructed
//	    return
//	}
//	err = sale.StartDelivery(ordered)
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// Plan returns the customers' identifiers in visiting order.
//
// Parameters:
//   - customers: The distinct customers appearing in the sale's items
//
// Returns:
//   - []kernel.UUID: Customer identifiers sorted by name, ties broken by identifier
//   - error: A validation error if any customer was not properly constructed
func (r RoutePlanner) Plan(customers []*customer.Customer) ([]kernel.UUID, error) {
	for _, c := range customers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	sorted := make([]*customer.Customer, len(customers))
	copy(sorted, customers)

	sort.Slice(sorted, func(i, j int) bool {
		ni := strings.ToLower(sorted[i].Name())
		nj := strings.ToLower(sorted[j].Name())
		if ni != nj {
			return ni < nj
		}
		return sorted[i].ID().String() < sorted[j].ID().String()
	})

	ordered := make([]kernel.UUID, 0, len(sorted))
	for _, c := range sorted {
		ordered = append(ordered, c.ID())
	}
	return ordered, nil
}
