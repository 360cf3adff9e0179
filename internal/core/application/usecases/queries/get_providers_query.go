package queries

import (
	"errors"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrGetProvidersQueryIsNotConstructed = errors.New(
	"GetProvidersQuery must be created via NewGetProvidersQuery constructor",
)

// GetProvidersQuery lists all suppliers of one account.
type GetProvidersQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProvidersQuery creates a query to list an account's suppliers.
func NewGetProvidersQuery(ownerID kernel.UUID) (GetProvidersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetProvidersQuery{}, err
	}

	return GetProvidersQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProvidersQuery) Validate() error {
	return q.guard.Validate(ErrGetProvidersQueryIsNotConstructed)
}

// OwnerID returns the identifier of the requesting user.
func (q GetProvidersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetProvidersQueryResponse is the list read model for one supplier.
type GetProvidersQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Email   string
	Phone   string
	Address string
}
