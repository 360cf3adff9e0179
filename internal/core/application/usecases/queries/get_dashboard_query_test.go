package queries_test

import (
	"testing"
	"time"

	"breakfast/internal/core/application/usecases/queries"
	"breakfast/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDashboardQuery_Valid(t *testing.T) {
	ownerID := kernel.NewUUID()
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewGetDashboardQuery(ownerID, from, to)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, ownerID, query.OwnerID())
	assert.Equal(t, from, query.From())
	assert.Equal(t, to, query.To())
}

func TestNewGetDashboardQuery_OpenRange(t *testing.T) {
	query, err := queries.NewGetDashboardQuery(kernel.NewUUID(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.True(t, query.From().IsZero())
	assert.True(t, query.To().IsZero())
}

func TestNewGetDashboardQuery_EmptyOwnerID(t *testing.T) {
	_, err := queries.NewGetDashboardQuery(kernel.UUID{}, time.Time{}, time.Time{})
	require.Error(t, err)
}

func TestGetDashboardQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDashboardQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDashboardQueryIsNotConstructed)
}
