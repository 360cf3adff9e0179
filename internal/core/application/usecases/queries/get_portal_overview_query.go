package queries

import (
	"errors"
	"time"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/guard"
)

var ErrGetPortalOverviewQueryIsNotConstructed = errors.New(
	"GetPortalOverviewQuery must be created via NewGetPortalOverviewQuery constructor",
)

// GetPortalOverviewQuery fetches a customer's self-service page: who they
// are and every sale of their account, newest first. Authorized by the
// customer's access token instead of a login.
type GetPortalOverviewQuery struct {
	accessToken kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPortalOverviewQuery creates a query for the customer portal page.
func NewGetPortalOverviewQuery(accessToken kernel.UUID) (GetPortalOverviewQuery, error) {
	if err := accessToken.Validate(); err != nil {
		return GetPortalOverviewQuery{}, err
	}

	return GetPortalOverviewQuery{
		accessToken: accessToken,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPortalOverviewQuery) Validate() error {
	return q.guard.Validate(ErrGetPortalOverviewQueryIsNotConstructed)
}

// AccessToken returns the customer's self-service token.
func (q GetPortalOverviewQuery) AccessToken() kernel.UUID {
	return q.accessToken
}

// PortalSaleSummary is one sale row on the customer's page. IsOpen reports
// whether the customer can still place or change an order under the cutoff
// policy.
type PortalSaleSummary struct {
	ID           kernel.UUID
	DeliveryDate time.Time
	Status       string
	IsOpen       bool
	CutoffAt     time.Time
}

// GetPortalOverviewQueryResponse is the read model for the customer's page.
type GetPortalOverviewQueryResponse struct {
	CustomerID   kernel.UUID
	CustomerName string
	Sales        []PortalSaleSummary
}
