package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakfast/internal/pkg/errs"
)

func TestStepStatus_Complete(t *testing.T) {
	t.Run("from_pending", func(t *testing.T) {
		status, err := StepPending.Complete()
		require.NoError(t, err)
		assert.Equal(t, StepCompleted, status)
	})

	t.Run("from_skipped", func(t *testing.T) {
		status, err := StepSkipped.Complete()
		require.NoError(t, err)
		assert.Equal(t, StepCompleted, status)
	})

	t.Run("already_completed", func(t *testing.T) {
		_, err := StepCompleted.Complete()
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestStepStatus_Skip(t *testing.T) {
	t.Run("from_pending", func(t *testing.T) {
		status, err := StepPending.Skip()
		require.NoError(t, err)
		assert.Equal(t, StepSkipped, status)
	})

	t.Run("from_completed", func(t *testing.T) {
		_, err := StepCompleted.Skip()
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("already_skipped", func(t *testing.T) {
		_, err := StepSkipped.Skip()
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestStepStatus_Reset(t *testing.T) {
	for _, from := range []StepStatus{StepPending, StepCompleted, StepSkipped} {
		status, err := from.Reset()
		require.NoError(t, err)
		assert.Equal(t, StepPending, status)
	}
}

func TestStepStatusFromString(t *testing.T) {
	t.Run("known_names", func(t *testing.T) {
		for _, name := range []string{"pending", "completed", "skipped"} {
			status, err := StepStatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("unknown_name", func(t *testing.T) {
		_, err := StepStatusFromString("done")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
