package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
)

func TestNewAccount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a, err := NewAccount(kernel.NewUUID(), "user@example.com", "$2a$10$hash")

		require.NoError(t, err)
		assert.NoError(t, a.Validate())
		assert.Equal(t, "user@example.com", a.Email())
	})

	t.Run("email_lowercased", func(t *testing.T) {
		a, err := NewAccount(kernel.NewUUID(), "  User@Example.COM ", "$2a$10$hash")

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", a.Email())
	})

	t.Run("email_required", func(t *testing.T) {
		_, err := NewAccount(kernel.NewUUID(), "", "$2a$10$hash")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("email_malformed", func(t *testing.T) {
		_, err := NewAccount(kernel.NewUUID(), "not-an-email", "$2a$10$hash")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("password_hash_required", func(t *testing.T) {
		_, err := NewAccount(kernel.NewUUID(), "user@example.com", "")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("not_constructed", func(t *testing.T) {
		var a Account
		assert.ErrorIs(t, a.Validate(), ErrAccountIsNotConstructed)
	})
}
