package sale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
)

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func newTestItem(t *testing.T, customerID kernel.UUID, sellPrice float64) *Item {
	t.Helper()
	item, err := NewItem(customerID, kernel.NewUUID(), 1, mustMoney(t, 1), mustMoney(t, sellPrice))
	require.NoError(t, err)
	return item
}

func newDraftSale(t *testing.T, customers ...kernel.UUID) *Sale {
	t.Helper()

	items := make([]*Item, 0, len(customers))
	for _, customerID := range customers {
		items = append(items, newTestItem(t, customerID, 10))
	}

	deliveryDate := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)
	s, err := NewSale(kernel.NewUUID(), kernel.NewUUID(), deliveryDate, items)
	require.NoError(t, err)
	return s
}

func newInProgressSale(t *testing.T, customers ...kernel.UUID) *Sale {
	t.Helper()

	s := newDraftSale(t, customers...)
	require.NoError(t, s.Close())
	require.NoError(t, s.StartDelivery(customers))
	return s
}

func TestNewSale(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := newDraftSale(t, kernel.NewUUID())

		assert.NoError(t, s.Validate())
		assert.Equal(t, StatusDraft, s.Status())
		assert.Empty(t, s.Steps())
	})

	t.Run("empty_items_allowed", func(t *testing.T) {
		s, err := NewSale(kernel.NewUUID(), kernel.NewUUID(),
			time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), nil)

		require.NoError(t, err)
		assert.Empty(t, s.Items())
	})

	t.Run("invalid_owner", func(t *testing.T) {
		_, err := NewSale(kernel.NewUUID(), kernel.UUID{},
			time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), nil)

		assert.Error(t, err)
	})

	t.Run("zero_delivery_date", func(t *testing.T) {
		_, err := NewSale(kernel.NewUUID(), kernel.NewUUID(), time.Time{}, nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("not_constructed", func(t *testing.T) {
		var s Sale
		assert.ErrorIs(t, s.Validate(), ErrSaleIsNotConstructed)
	})
}

func TestSale_ReplaceItems(t *testing.T) {
	t.Run("draft_sale", func(t *testing.T) {
		s := newDraftSale(t, kernel.NewUUID())
		replacement := []*Item{newTestItem(t, kernel.NewUUID(), 25)}

		require.NoError(t, s.ReplaceItems(replacement))
		assert.Equal(t, replacement, s.Items())
	})

	t.Run("closed_sale", func(t *testing.T) {
		s := newDraftSale(t, kernel.NewUUID())
		require.NoError(t, s.Close())

		err := s.ReplaceItems(nil)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestSale_ReplaceCustomerItems(t *testing.T) {
	t.Run("replaces_only_that_customers_lines", func(t *testing.T) {
		maria := kernel.NewUUID()
		carmen := kernel.NewUUID()
		s := newDraftSale(t, maria, carmen)

		replacement := []*Item{
			newTestItem(t, maria, 25),
			newTestItem(t, maria, 5),
		}
		require.NoError(t, s.ReplaceCustomerItems(maria, replacement))

		require.Len(t, s.Items(), 3)
		var mariaLines, carmenLines int
		for _, item := range s.Items() {
			switch {
			case item.CustomerID().IsEqual(maria):
				mariaLines++
			case item.CustomerID().IsEqual(carmen):
				carmenLines++
			}
		}
		assert.Equal(t, 2, mariaLines)
		assert.Equal(t, 1, carmenLines)
	})

	t.Run("empty_slice_clears_the_order", func(t *testing.T) {
		maria := kernel.NewUUID()
		carmen := kernel.NewUUID()
		s := newDraftSale(t, maria, carmen)

		require.NoError(t, s.ReplaceCustomerItems(maria, nil))

		require.Len(t, s.Items(), 1)
		assert.True(t, s.Items()[0].CustomerID().IsEqual(carmen))
	})

	t.Run("rejects_items_of_another_customer", func(t *testing.T) {
		maria := kernel.NewUUID()
		s := newDraftSale(t, maria)

		err := s.ReplaceCustomerItems(maria, []*Item{newTestItem(t, kernel.NewUUID(), 10)})
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("closed_sale", func(t *testing.T) {
		maria := kernel.NewUUID()
		s := newDraftSale(t, maria)
		require.NoError(t, s.Close())

		err := s.ReplaceCustomerItems(maria, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestSale_Lifecycle(t *testing.T) {
	t.Run("close_and_reopen", func(t *testing.T) {
		s := newDraftSale(t, kernel.NewUUID())

		require.NoError(t, s.Close())
		assert.Equal(t, StatusClosed, s.Status())

		require.NoError(t, s.Reopen())
		assert.Equal(t, StatusDraft, s.Status())
	})

	t.Run("close_twice", func(t *testing.T) {
		s := newDraftSale(t, kernel.NewUUID())
		require.NoError(t, s.Close())

		assert.ErrorIs(t, s.Close(), errs.ErrInvalidState)
	})

	t.Run("reopen_draft", func(t *testing.T) {
		s := newDraftSale(t, kernel.NewUUID())

		assert.ErrorIs(t, s.Reopen(), errs.ErrInvalidState)
	})

	t.Run("no_reopen_after_delivery_started", func(t *testing.T) {
		s := newInProgressSale(t, kernel.NewUUID())

		assert.ErrorIs(t, s.Reopen(), errs.ErrInvalidState)
	})
}

func TestSale_StartDelivery(t *testing.T) {
	t.Run("creates_contiguous_route", func(t *testing.T) {
		a, b, c := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
		s := newDraftSale(t, a, b, c)
		require.NoError(t, s.Close())

		require.NoError(t, s.StartDelivery([]kernel.UUID{a, b, c}))

		assert.Equal(t, StatusInProgress, s.Status())
		require.Len(t, s.Steps(), 3)
		for i, step := range s.Steps() {
			assert.Equal(t, i, step.SequenceOrder())
			assert.Equal(t, StepPending, step.Status())
		}
		assert.True(t, s.Steps()[0].IsNext())
		assert.False(t, s.Steps()[1].IsNext())
		assert.False(t, s.Steps()[2].IsNext())
	})

	t.Run("one_step_per_customer", func(t *testing.T) {
		customerID := kernel.NewUUID()
		s := newDraftSale(t, customerID, customerID, customerID)
		require.NoError(t, s.Close())

		require.NoError(t, s.StartDelivery([]kernel.UUID{customerID}))

		assert.Len(t, s.Steps(), 1)
	})

	t.Run("sale_not_closed", func(t *testing.T) {
		customerID := kernel.NewUUID()
		s := newDraftSale(t, customerID)

		err := s.StartDelivery([]kernel.UUID{customerID})
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("route_already_exists", func(t *testing.T) {
		customerID := kernel.NewUUID()
		s := newInProgressSale(t, customerID)

		err := s.StartDelivery([]kernel.UUID{customerID})
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("no_customers", func(t *testing.T) {
		s := newDraftSale(t)
		require.NoError(t, s.Close())

		err := s.StartDelivery(nil)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("foreign_customer_in_order", func(t *testing.T) {
		customerID := kernel.NewUUID()
		s := newDraftSale(t, customerID)
		require.NoError(t, s.Close())

		err := s.StartDelivery([]kernel.UUID{kernel.NewUUID()})
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSale_ReorderRoute(t *testing.T) {
	t.Run("reassigns_sequence_orders", func(t *testing.T) {
		a, b, c := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
		s := newInProgressSale(t, a, b, c)

		require.NoError(t, s.ReorderRoute([]kernel.UUID{c, a, b}))

		require.Len(t, s.Steps(), 3)
		assert.Equal(t, c, s.Steps()[0].CustomerID())
		assert.Equal(t, a, s.Steps()[1].CustomerID())
		assert.Equal(t, b, s.Steps()[2].CustomerID())
		for i, step := range s.Steps() {
			assert.Equal(t, i, step.SequenceOrder())
		}
	})

	t.Run("preserves_step_state", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		s := newInProgressSale(t, a, b)
		now := time.Date(2024, 12, 20, 8, 0, 0, 0, time.UTC)
		require.NoError(t, s.CompleteStep(a, mustMoney(t, 10), kernel.ZeroMoney(), now))

		require.NoError(t, s.ReorderRoute([]kernel.UUID{b, a}))

		assert.Equal(t, StepCompleted, s.Steps()[1].Status())
		require.NotNil(t, s.Steps()[1].CompletedAt())
		assert.Equal(t, now, *s.Steps()[1].CompletedAt())
	})

	t.Run("missing_customer", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		s := newInProgressSale(t, a, b)

		err := s.ReorderRoute([]kernel.UUID{a})
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("duplicate_customer", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		s := newInProgressSale(t, a, b)

		err := s.ReorderRoute([]kernel.UUID{a, a})
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("delivery_not_started", func(t *testing.T) {
		customerID := kernel.NewUUID()
		s := newDraftSale(t, customerID)

		err := s.ReorderRoute([]kernel.UUID{customerID})
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestSale_SetNextStep(t *testing.T) {
	t.Run("moves_marker", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		s := newInProgressSale(t, a, b)

		require.NoError(t, s.SetNextStep(b))

		assert.False(t, s.Steps()[0].IsNext())
		assert.True(t, s.Steps()[1].IsNext())
	})

	t.Run("non_pending_step", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		s := newInProgressSale(t, a, b)
		require.NoError(t, s.SkipStep(a, "closed shop"))

		err := s.SetNextStep(a)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("unknown_customer", func(t *testing.T) {
		s := newInProgressSale(t, kernel.NewUUID())

		err := s.SetNextStep(kernel.NewUUID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestSale_CompleteStep(t *testing.T) {
	now := time.Date(2024, 12, 20, 8, 30, 0, 0, time.UTC)

	t.Run("records_completion", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		s := newInProgressSale(t, a, b)

		require.NoError(t, s.CompleteStep(a, mustMoney(t, 7.5), mustMoney(t, 2.5), now))

		step := s.Steps()[0]
		assert.Equal(t, StepCompleted, step.Status())
		require.NotNil(t, step.AmountCollected())
		assert.True(t, step.AmountCollected().IsEqual(mustMoney(t, 7.5)))
		require.NotNil(t, step.CreditApplied())
		assert.True(t, step.CreditApplied().IsEqual(mustMoney(t, 2.5)))
		require.NotNil(t, step.CompletedAt())
		assert.Equal(t, now, *step.CompletedAt())
		assert.False(t, step.IsNext())
		assert.Equal(t, StatusInProgress, s.Status())
	})

	t.Run("last_step_completes_sale", func(t *testing.T) {
		customerID := kernel.NewUUID()
		s := newInProgressSale(t, customerID)

		require.NoError(t, s.CompleteStep(customerID, mustMoney(t, 10), kernel.ZeroMoney(), now))

		assert.Equal(t, StatusCompleted, s.Status())
	})

	t.Run("skipped_step_can_be_completed", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		s := newInProgressSale(t, a, b)
		require.NoError(t, s.SkipStep(a, "nobody home"))

		require.NoError(t, s.CompleteStep(a, mustMoney(t, 10), kernel.ZeroMoney(), now))

		assert.Equal(t, StepCompleted, s.Steps()[0].Status())
		assert.Empty(t, s.Steps()[0].SkipReason())
	})

	t.Run("already_completed_step", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		s := newInProgressSale(t, a, b)
		require.NoError(t, s.CompleteStep(a, mustMoney(t, 10), kernel.ZeroMoney(), now))

		err := s.CompleteStep(a, mustMoney(t, 10), kernel.ZeroMoney(), now)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("delivery_not_started", func(t *testing.T) {
		customerID := kernel.NewUUID()
		s := newDraftSale(t, customerID)

		err := s.CompleteStep(customerID, mustMoney(t, 10), kernel.ZeroMoney(), now)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("unknown_customer", func(t *testing.T) {
		s := newInProgressSale(t, kernel.NewUUID())

		err := s.CompleteStep(kernel.NewUUID(), mustMoney(t, 10), kernel.ZeroMoney(), now)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestSale_SkipStep(t *testing.T) {
	t.Run("records_reason", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		s := newInProgressSale(t, a, b)

		require.NoError(t, s.SkipStep(a, "nobody home"))

		step := s.Steps()[0]
		assert.Equal(t, StepSkipped, step.Status())
		assert.Equal(t, "nobody home", step.SkipReason())
		assert.Nil(t, step.AmountCollected())
	})

	t.Run("reason_required", func(t *testing.T) {
		customerID := kernel.NewUUID()
		s := newInProgressSale(t, customerID)

		err := s.SkipStep(customerID, "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("last_skip_completes_sale", func(t *testing.T) {
		customerID := kernel.NewUUID()
		s := newInProgressSale(t, customerID)

		require.NoError(t, s.SkipStep(customerID, "vacation"))

		assert.Equal(t, StatusCompleted, s.Status())
	})
}

func TestSale_ResetStep(t *testing.T) {
	now := time.Date(2024, 12, 20, 8, 30, 0, 0, time.UTC)

	t.Run("returns_applied_credit", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		s := newInProgressSale(t, a, b)
		require.NoError(t, s.CompleteStep(a, mustMoney(t, 7.5), mustMoney(t, 2.5), now))

		restored, err := s.ResetStep(a)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(mustMoney(t, 2.5)))

		step := s.Steps()[0]
		assert.Equal(t, StepPending, step.Status())
		assert.Nil(t, step.AmountCollected())
		assert.Nil(t, step.CreditApplied())
		assert.Nil(t, step.CompletedAt())
	})

	t.Run("skipped_step_restores_nothing", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		s := newInProgressSale(t, a, b)
		require.NoError(t, s.SkipStep(a, "nobody home"))

		restored, err := s.ResetStep(a)

		require.NoError(t, err)
		assert.True(t, restored.IsZero())
		assert.Empty(t, s.Steps()[0].SkipReason())
	})

	t.Run("completed_sale_stays_completed", func(t *testing.T) {
		customerID := kernel.NewUUID()
		s := newInProgressSale(t, customerID)
		require.NoError(t, s.CompleteStep(customerID, mustMoney(t, 10), kernel.ZeroMoney(), now))
		require.Equal(t, StatusCompleted, s.Status())

		_, err := s.ResetStep(customerID)

		require.NoError(t, err)
		assert.Equal(t, StepPending, s.Steps()[0].Status())
		assert.Equal(t, StatusCompleted, s.Status())
	})

	t.Run("delivery_not_started", func(t *testing.T) {
		customerID := kernel.NewUUID()
		s := newDraftSale(t, customerID)

		_, err := s.ResetStep(customerID)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestPercentComplete(t *testing.T) {
	tests := []struct {
		name    string
		settled int
		total   int
		want    float64
	}{
		{"zero_total", 0, 0, 0},
		{"none_settled", 0, 5, 0},
		{"four_of_five", 4, 5, 80.0},
		{"one_third_rounds_to_one_decimal", 1, 3, 33.3},
		{"two_thirds_rounds_up", 2, 3, 66.7},
		{"all_settled", 7, 7, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentComplete(tt.settled, tt.total))
		})
	}
}

func TestSale_Progress(t *testing.T) {
	now := time.Date(2024, 12, 20, 8, 30, 0, 0, time.UTC)

	t.Run("counts_and_percent", func(t *testing.T) {
		customers := []kernel.UUID{
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		}
		s := newInProgressSale(t, customers...)

		require.NoError(t, s.CompleteStep(customers[0], mustMoney(t, 10), kernel.ZeroMoney(), now))
		require.NoError(t, s.CompleteStep(customers[1], mustMoney(t, 8), mustMoney(t, 2), now))
		require.NoError(t, s.CompleteStep(customers[2], mustMoney(t, 10), kernel.ZeroMoney(), now))
		require.NoError(t, s.SkipStep(customers[3], "nobody home"))

		p := s.Progress()

		assert.Equal(t, 5, p.Total)
		assert.Equal(t, 3, p.Completed)
		assert.Equal(t, 1, p.Skipped)
		assert.Equal(t, 1, p.Pending)
		assert.Equal(t, 80.0, p.PercentComplete)
		assert.True(t, p.TotalCollected.IsEqual(mustMoney(t, 28)))
		assert.True(t, p.TotalCreditApplied.IsEqual(mustMoney(t, 2)))
		assert.True(t, p.TotalExpected.IsEqual(mustMoney(t, 50)))
		assert.True(t, p.TotalSkippedAmount.IsEqual(mustMoney(t, 10)))
	})

	t.Run("no_steps", func(t *testing.T) {
		s := newDraftSale(t, kernel.NewUUID())

		p := s.Progress()

		assert.Zero(t, p.Total)
		assert.Zero(t, p.PercentComplete)
	})
}

func TestRestoreSale(t *testing.T) {
	t.Run("preserves_status_and_step_order", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		stepB, err := RestoreDeliveryStep(kernel.NewUUID(), b, 1, StepPending, false, nil, nil, nil, "")
		require.NoError(t, err)
		stepA, err := RestoreDeliveryStep(kernel.NewUUID(), a, 0, StepPending, true, nil, nil, nil, "")
		require.NoError(t, err)

		s, err := RestoreSale(
			kernel.NewUUID(), kernel.NewUUID(),
			time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			StatusInProgress,
			[]*Item{newTestItem(t, a, 10), newTestItem(t, b, 10)},
			[]*DeliveryStep{stepB, stepA},
		)

		require.NoError(t, err)
		assert.Equal(t, StatusInProgress, s.Status())
		require.Len(t, s.Steps(), 2)
		assert.Equal(t, a, s.Steps()[0].CustomerID())
		assert.Equal(t, b, s.Steps()[1].CustomerID())
	})

	t.Run("invalid_status", func(t *testing.T) {
		_, err := RestoreSale(
			kernel.NewUUID(), kernel.NewUUID(),
			time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			StatusUnknown, nil, nil,
		)

		assert.Error(t, err)
	})
}
