package queries

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery lists all customers of one account.
type GetCustomersQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a query to list an account's customers.
func NewGetCustomersQuery(ownerID kernel.UUID) (GetCustomersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetCustomersQuery{}, err
	}

	return GetCustomersQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// OwnerID returns the identifier of the requesting user.
func (q GetCustomersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetCustomersQueryResponse is the list read model for one customer.
// AccessToken is the customer's self-service ordering link token.
type GetCustomersQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Phone         string
	Address       string
	Notes         string
	CreditBalance float64
	AccessToken   kernel.UUID
}
