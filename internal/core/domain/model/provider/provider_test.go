package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
)

func TestNewProvider(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p, err := NewProvider(
			kernel.NewUUID(), kernel.NewUUID(),
			"Panaderia Sol", "orders@panaderiasol.example", "+34911222333", "Calle del Pan 4",
		)

		require.NoError(t, err)
		assert.NoError(t, p.Validate())
		assert.Equal(t, "orders@panaderiasol.example", p.Email())
	})

	t.Run("email_is_lowercased", func(t *testing.T) {
		p, err := NewProvider(
			kernel.NewUUID(), kernel.NewUUID(),
			"Panaderia Sol", " Orders@PanaderiaSol.example ", "", "",
		)

		require.NoError(t, err)
		assert.Equal(t, "orders@panaderiasol.example", p.Email())
	})

	t.Run("name_required", func(t *testing.T) {
		_, err := NewProvider(
			kernel.NewUUID(), kernel.NewUUID(),
			"", "orders@panaderiasol.example", "", "",
		)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("email_required", func(t *testing.T) {
		_, err := NewProvider(kernel.NewUUID(), kernel.NewUUID(), "Panaderia Sol", "", "", "")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("email_must_have_at_sign", func(t *testing.T) {
		_, err := NewProvider(kernel.NewUUID(), kernel.NewUUID(), "Panaderia Sol", "not-an-email", "", "")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("owner_required", func(t *testing.T) {
		_, err := NewProvider(kernel.NewUUID(), kernel.UUID{}, "Panaderia Sol", "orders@sol.example", "", "")

		assert.Error(t, err)
	})
}

func TestProvider_UpdateDetails(t *testing.T) {
	p, err := NewProvider(
		kernel.NewUUID(), kernel.NewUUID(),
		"Panaderia Sol", "orders@panaderiasol.example", "", "",
	)
	require.NoError(t, err)

	t.Run("replaces_contact_details", func(t *testing.T) {
		err := p.UpdateDetails("Horno Luna", "pedidos@hornoluna.example", "+34911000111", "Plaza Mayor 2")

		require.NoError(t, err)
		assert.Equal(t, "Horno Luna", p.Name())
		assert.Equal(t, "pedidos@hornoluna.example", p.Email())
		assert.Equal(t, "+34911000111", p.Phone())
		assert.Equal(t, "Plaza Mayor 2", p.Address())
	})

	t.Run("rejects_invalid_email", func(t *testing.T) {
		err := p.UpdateDetails("Horno Luna", "bad-email", "", "")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProvider_Validate(t *testing.T) {
	var p *Provider
	assert.ErrorIs(t, p.Validate(), ErrProviderIsNotConstructed)

	zero := &Provider{}
	assert.ErrorIs(t, zero.Validate(), ErrProviderIsNotConstructed)
}
