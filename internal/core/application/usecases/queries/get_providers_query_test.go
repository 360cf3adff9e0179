package queries_test

import (
	"testing"

	"breakfast/internal/core/application/usecases/queries"
	"breakfast/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProvidersQuery_Valid(t *testing.T) {
	ownerID := kernel.NewUUID()

	query, err := queries.NewGetProvidersQuery(ownerID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, ownerID, query.OwnerID())
}

func TestNewGetProvidersQuery_EmptyOwnerID(t *testing.T) {
	_, err := queries.NewGetProvidersQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetProvidersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetProvidersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetProvidersQueryIsNotConstructed)
}
