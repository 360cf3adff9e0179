package queries_test

import (
	"testing"

	"breakfast/internal/core/application/usecases/queries"
	"breakfast/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPortalOverviewQuery_Valid(t *testing.T) {
	token := kernel.NewUUID()

	query, err := queries.NewGetPortalOverviewQuery(token)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, token, query.AccessToken())
}

func TestNewGetPortalOverviewQuery_EmptyToken(t *testing.T) {
	_, err := queries.NewGetPortalOverviewQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetPortalOverviewQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPortalOverviewQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPortalOverviewQueryIsNotConstructed)
}
