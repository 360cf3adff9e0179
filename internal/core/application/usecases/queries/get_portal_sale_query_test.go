package queries_test

import (
	"testing"

	"breakfast/internal/core/application/usecases/queries"
	"breakfast/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPortalSaleQuery_Valid(t *testing.T) {
	token, saleID := kernel.NewUUID(), kernel.NewUUID()

	query, err := queries.NewGetPortalSaleQuery(token, saleID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, token, query.AccessToken())
	assert.Equal(t, saleID, query.SaleID())
}

func TestNewGetPortalSaleQuery_EmptyIDs(t *testing.T) {
	_, err := queries.NewGetPortalSaleQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetPortalSaleQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestGetPortalSaleQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPortalSaleQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPortalSaleQueryIsNotConstructed)
}
