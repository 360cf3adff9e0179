package sale

import (
	"errors"
	"time"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
)

// ErrStepIsNotConstructed is returned when a DeliveryStep instance was not
// created through one of the constructor functions.
var ErrStepIsNotConstructed = errors.New("DeliveryStep must be created via newDeliveryStep or RestoreDeliveryStep")

// ErrSkipReasonIsRequired is returned when skipping a step without a reason.
var ErrSkipReasonIsRequired = errs.NewValueIsRequiredError("skip reason")

// DeliveryStep is one customer's position in a sale's delivery route.
//
// Steps are created in bulk when delivery starts and live inside the Sale
// aggregate; all mutations go through Sale methods so that the route
// invariants (contiguous sequence orders, single next marker, sale
// completion re-check) hold at every commit point.
//
// Completion fields are mutually consistent by construction:
//   - completed: completedAt and amountCollected set, skipReason empty
//   - skipped: skipReason set, completedAt and amountCollected cleared
//   - pending: all completion fields cleared
type DeliveryStep struct {
	id              kernel.UUID
	customerID      kernel.UUID
	sequenceOrder   int
	status          StepStatus
	isNext          bool
	completedAt     *time.Time
	amountCollected *kernel.Money
	creditApplied   *kernel.Money
	skipReason      string

	isConstructed bool
}

// newDeliveryStep creates a pending step for a customer at the given
// position. Only the Sale aggregate creates steps, hence unexported.
func newDeliveryStep(customerID kernel.UUID, sequenceOrder int) (*DeliveryStep, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if sequenceOrder < 0 {
		return nil, errs.NewValueIsOutOfRangeError("sequence order", sequenceOrder, 0, "n-1")
	}

	return &DeliveryStep{
		id:            kernel.NewUUID(),
		customerID:    customerID,
		sequenceOrder: sequenceOrder,
		status:        StepPending,
		isConstructed: true,
	}, nil
}

// RestoreDeliveryStep reconstructs a DeliveryStep from persistent storage.
func RestoreDeliveryStep(
	id, customerID kernel.UUID,
	sequenceOrder int,
	status StepStatus,
	isNext bool,
	completedAt *time.Time,
	amountCollected, creditApplied *kernel.Money,
	skipReason string,
) (*DeliveryStep, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	step, err := newDeliveryStep(customerID, sequenceOrder)
	if err != nil {
		return nil, err
	}

	step.id = id
	step.status = status
	step.isNext = isNext
	step.completedAt = completedAt
	step.amountCollected = amountCollected
	step.creditApplied = creditApplied
	step.skipReason = skipReason
	return step, nil
}

// Validate ensures the DeliveryStep instance was properly constructed.
func (d *DeliveryStep) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrStepIsNotConstructed
	}
	return nil
}

// ID returns the step's unique identifier.
func (d *DeliveryStep) ID() kernel.UUID {
	return d.id
}

// CustomerID returns the customer visited at this stop.
func (d *DeliveryStep) CustomerID() kernel.UUID {
	return d.customerID
}

// SequenceOrder returns the step's 0-based position in the route.
func (d *DeliveryStep) SequenceOrder() int {
	return d.sequenceOrder
}

// Status returns the current step status.
func (d *DeliveryStep) Status() StepStatus {
	return d.status
}

// IsNext reports whether this stop is marked as the next delivery.
func (d *DeliveryStep) IsNext() bool {
	return d.isNext
}

// CompletedAt returns the completion timestamp, or nil while not completed.
func (d *DeliveryStep) CompletedAt() *time.Time {
	return d.completedAt
}

// AmountCollected returns the amount collected on completion, or nil.
func (d *DeliveryStep) AmountCollected() *kernel.Money {
	return d.amountCollected
}

// CreditApplied returns the customer credit applied on completion, or nil.
func (d *DeliveryStep) CreditApplied() *kernel.Money {
	return d.creditApplied
}

// SkipReason returns the recorded skip reason, or "" while not skipped.
func (d *DeliveryStep) SkipReason() string {
	return d.skipReason
}

// complete marks the stop as served, recording the amount collected, the
// customer credit applied, and the completion time. Any prior skip reason is
// cleared.
func (d *DeliveryStep) complete(amountCollected, creditApplied kernel.Money, now time.Time) error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.isNext = false
	d.completedAt = &now
	d.amountCollected = &amountCollected
	d.creditApplied = &creditApplied
	d.skipReason = ""
	return nil
}

// skip marks the stop as skipped with the given non-empty reason.
// Amount and timestamp fields are cleared.
func (d *DeliveryStep) skip(reason string) error {
	if reason == "" {
		return ErrSkipReasonIsRequired
	}

	newStatus, err := d.status.Skip()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.isNext = false
	d.completedAt = nil
	d.amountCollected = nil
	d.creditApplied = nil
	d.skipReason = reason
	return nil
}

// reset returns the stop to pending, clearing all completion fields.
// The previously applied credit is returned so the caller can restore it to
// the customer's balance.
func (d *DeliveryStep) reset() (restoredCredit kernel.Money, err error) {
	newStatus, err := d.status.Reset()
	if err != nil {
		return kernel.Money{}, err
	}

	if d.status == StepCompleted && d.creditApplied != nil {
		restoredCredit = *d.creditApplied
	}

	d.status = newStatus
	d.isNext = false
	d.completedAt = nil
	d.amountCollected = nil
	d.creditApplied = nil
	d.skipReason = ""
	return restoredCredit, nil
}

// setSequenceOrder is used by route reordering; status and completion fields
// are untouched.
func (d *DeliveryStep) setSequenceOrder(sequenceOrder int) {
	d.sequenceOrder = sequenceOrder
}

// setNext flips the next-delivery marker.
func (d *DeliveryStep) setNext(isNext bool) {
	d.isNext = isNext
}
