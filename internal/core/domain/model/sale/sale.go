package sale

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"breakfast/internal/core/domain/model/kernel"
	"breakfast/internal/pkg/errs"
)

var (
	// ErrSaleIsNotConstructed is returned when a Sale instance was not created through
	// the NewSale or RestoreSale constructors. This ensures all sales are properly validated.
	ErrSaleIsNotConstructed = errors.New("Sale must be created via NewSale or RestoreSale")

	// ErrRouteAlreadyExists is returned when delivery is started for a sale
	// that already has a generated route.
	ErrRouteAlreadyExists = errs.NewConflictError("delivery route", "route already exists for this sale")

	// ErrNoCustomersInSale is returned when delivery is started for a sale
	// without a single customer among its items.
	ErrNoCustomersInSale = errs.NewInvalidStateErrorWithCause(
		"start delivery", "closed",
		errors.New("sale has no customers with items"),
	)
)

// Sale represents one delivery event for one owning user on one date.
// It is the aggregate root that manages the sale lifecycle from draft through
// closing, delivery, and completion, together with its items and, once
// delivery starts, its delivery route.
//
// Sale follows these invariants:
//   - Status transitions follow the table in status.go; completion is one-way
//   - Items are replaceable only while the sale is draft
//   - Delivery steps are created in bulk exactly once, when delivery starts
//   - sequence_order values form a contiguous 0..n-1 ordering at creation and after reordering
//   - At most one step carries the next-delivery marker
//   - Once no step remains pending, the sale transitions to completed
//
// The Sale struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Sale struct {
	// id is the unique identifier for the sale
	id kernel.UUID

	// ownerID references the user who created the sale
	ownerID kernel.UUID

	// deliveryDate is the day the sale is delivered (time component ignored)
	deliveryDate time.Time

	// status represents the current state in the sale lifecycle
	status Status

	// items are the per-customer product lines
	items []*Item

	// steps is the delivery route, empty until delivery starts
	steps []*DeliveryStep

	// isConstructed ensures the sale was created via a constructor
	isConstructed bool
}

// NewSale creates a new draft Sale for the given owner and delivery date.
//
// Parameters:
//   - id: Unique identifier for the sale (must be a valid UUID)
//   - ownerID: The owning user's identifier (must be a valid UUID)
//   - deliveryDate: The delivery day; only the date part is significant
//   - items: The initial product lines (may be empty for an order-collection draft)
//
// Returns the created sale in StatusDraft with no delivery steps, or a
// validation error if any parameter is invalid.
func NewSale(id, ownerID kernel.UUID, deliveryDate time.Time, items []*Item) (*Sale, error) {
	s := &Sale{
		status:        StatusDraft,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setDeliveryDate(deliveryDate),
		s.setItems(items),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSale reconstructs a Sale aggregate from persistent storage,
// including its items and delivery steps, preserving the persisted status.
func RestoreSale(
	id, ownerID kernel.UUID,
	deliveryDate time.Time,
	status Status,
	items []*Item,
	steps []*DeliveryStep,
) (*Sale, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	s, err := NewSale(id, ownerID, deliveryDate, items)
	if err != nil {
		return nil, err
	}

	for _, step := range steps {
		if stepErr := step.Validate(); stepErr != nil {
			return nil, stepErr
		}
	}

	s.status = status
	s.steps = steps
	s.sortSteps()
	return s, nil
}

// Validate ensures the Sale instance was properly constructed through a constructor.
func (s *Sale) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSaleIsNotConstructed
	}
	return nil
}

// IsEqual compares two sales by their unique identifiers.
func (s *Sale) IsEqual(other *Sale) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the sale's unique identifier.
func (s *Sale) ID() kernel.UUID {
	return s.id
}

// OwnerID returns the identifier of the user who owns the sale.
func (s *Sale) OwnerID() kernel.UUID {
	return s.ownerID
}

// DeliveryDate returns the delivery day.
func (s *Sale) DeliveryDate() time.Time {
	return s.deliveryDate
}

// Status returns the current status of the sale.
func (s *Sale) Status() Status {
	return s.status
}

// Items returns the sale's product lines.
func (s *Sale) Items() []*Item {
	return s.items
}

// Steps returns the delivery route ordered by sequence.
// The slice is empty until delivery starts.
func (s *Sale) Steps() []*DeliveryStep {
	return s.steps
}

// DistinctCustomerIDs returns the set of customers referenced by the sale's
// items, in first-appearance order.
func (s *Sale) DistinctCustomerIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(s.items))
	ids := make([]kernel.UUID, 0, len(s.items))
	for _, item := range s.items {
		if _, ok := seen[item.CustomerID()]; ok {
			continue
		}
		seen[item.CustomerID()] = struct{}{}
		ids = append(ids, item.CustomerID())
	}
	return ids
}

// AcceptsOrders reports whether the sale still accepts new orders under the
// cutoff policy, evaluated at the injected instant.
func (s *Sale) AcceptsOrders(now time.Time, cutoffHours int) bool {
	return AcceptsOrders(s.status, s.deliveryDate, now, cutoffHours)
}

// ReplaceItems replaces the whole item set. Permitted only while the sale is
// draft; closed and later sales have frozen lines.
func (s *Sale) ReplaceItems(items []*Item) error {
	if s.status != StatusDraft {
		return errs.NewInvalidStateError("replace items", s.status.String())
	}
	return s.setItems(items)
}

// ReplaceCustomerItems replaces one customer's lines while leaving every
// other customer's order untouched. Permitted only while the sale is draft.
// An empty item slice clears the customer's order. Every given item must
// belong to the named customer.
func (s *Sale) ReplaceCustomerItems(customerID kernel.UUID, items []*Item) error {
	if s.status != StatusDraft {
		return errs.NewInvalidStateError("replace items", s.status.String())
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.CustomerID().IsEqual(customerID) {
			return errs.NewValueIsInvalidError("customer id")
		}
	}

	merged := make([]*Item, 0, len(s.items)+len(items))
	for _, item := range s.items {
		if !item.CustomerID().IsEqual(customerID) {
			merged = append(merged, item)
		}
	}
	merged = append(merged, items...)

	s.items = merged
	return nil
}

// Reschedule moves the sale to a new delivery date. Draft only.
func (s *Sale) Reschedule(deliveryDate time.Time) error {
	if s.status != StatusDraft {
		return errs.NewInvalidStateError("reschedule", s.status.String())
	}
	return s.setDeliveryDate(deliveryDate)
}

// Close transitions the sale from draft to closed, freezing its items.
func (s *Sale) Close() error {
	newStatus, err := s.status.TransitionTo(StatusClosed)
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

// Reopen transitions the sale from closed back to draft.
// Not allowed once delivery has started.
func (s *Sale) Reopen() error {
	newStatus, err := s.status.TransitionTo(StatusDraft)
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

// StartDelivery generates the delivery route and moves the sale to
// in_progress.
//
// orderedCustomers is the planned visiting order and must be exactly the
// distinct set of customers referenced by the sale's items (the route
// planner derives it; see services.RoutePlanner). Steps receive sequence
// orders 0..n-1 in that order, all pending, with the first stop marked as
// next.
//
// Preconditions:
//   - sale is closed (InvalidStateError otherwise)
//   - at least one customer has items (InvalidStateError otherwise)
//   - no route exists yet (ConflictError otherwise; the idempotency guard)
//
// The status change and step creation happen on the same aggregate so the
// persistence layer commits them atomically.
func (s *Sale) StartDelivery(orderedCustomers []kernel.UUID) error {
	if len(s.steps) > 0 {
		return ErrRouteAlreadyExists
	}

	if s.status != StatusClosed {
		return errs.NewInvalidStateError("start delivery", s.status.String())
	}

	if len(s.DistinctCustomerIDs()) == 0 {
		return ErrNoCustomersInSale
	}

	if err := s.validateCustomerPermutation(orderedCustomers, s.DistinctCustomerIDs()); err != nil {
		return err
	}

	steps := make([]*DeliveryStep, 0, len(orderedCustomers))
	for sequence, customerID := range orderedCustomers {
		step, err := newDeliveryStep(customerID, sequence)
		if err != nil {
			return err
		}
		step.setNext(sequence == 0)
		steps = append(steps, step)
	}

	newStatus, err := s.status.TransitionTo(StatusInProgress)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.steps = steps
	return nil
}

// ReorderRoute reassigns sequence orders 0..n-1 following the new visiting
// order. orderedCustomers must be exactly a permutation of the customers
// already present in the route; step statuses, timestamps, and collected
// amounts are untouched. Only permitted while delivery is in progress.
func (s *Sale) ReorderRoute(orderedCustomers []kernel.UUID) error {
	if s.status != StatusInProgress {
		return errs.NewInvalidStateError("reorder route", s.status.String())
	}

	current := make([]kernel.UUID, 0, len(s.steps))
	for _, step := range s.steps {
		current = append(current, step.CustomerID())
	}

	if err := s.validateCustomerPermutation(orderedCustomers, current); err != nil {
		return err
	}

	byCustomer := make(map[kernel.UUID]*DeliveryStep, len(s.steps))
	for _, step := range s.steps {
		byCustomer[step.CustomerID()] = step
	}

	for sequence, customerID := range orderedCustomers {
		byCustomer[customerID].setSequenceOrder(sequence)
	}

	s.sortSteps()
	return nil
}

// SetNextStep marks the pending step for the given customer as the next
// delivery, clearing the marker from every other step.
func (s *Sale) SetNextStep(customerID kernel.UUID) error {
	if s.status != StatusInProgress {
		return errs.NewInvalidStateError("select next delivery", s.status.String())
	}

	step, err := s.stepByCustomer(customerID)
	if err != nil {
		return err
	}

	if step.Status() != StepPending {
		return errs.NewInvalidStateError("select next delivery", step.Status().String())
	}

	for _, other := range s.steps {
		other.setNext(false)
	}
	step.setNext(true)
	return nil
}

// CompleteStep marks the step for the given customer as completed, recording
// the amount collected and the customer credit applied, timestamped at the
// injected instant. After the update the sale re-evaluates itself and
// transitions to completed once no step remains pending; re-checking an
// already completed sale is a no-op.
func (s *Sale) CompleteStep(customerID kernel.UUID, amountCollected, creditApplied kernel.Money, now time.Time) error {
	if err := s.ensureStepUpdatable("complete delivery step"); err != nil {
		return err
	}

	step, err := s.stepByCustomer(customerID)
	if err != nil {
		return err
	}

	if err = step.complete(amountCollected, creditApplied, now); err != nil {
		return err
	}

	s.recheckCompletion()
	return nil
}

// SkipStep marks the step for the given customer as skipped with the given
// non-empty reason and re-evaluates sale completion.
func (s *Sale) SkipStep(customerID kernel.UUID, reason string) error {
	if err := s.ensureStepUpdatable("skip delivery step"); err != nil {
		return err
	}

	step, err := s.stepByCustomer(customerID)
	if err != nil {
		return err
	}

	if err = step.skip(reason); err != nil {
		return err
	}

	s.recheckCompletion()
	return nil
}

// ResetStep returns the step for the given customer to pending, clearing
// every completion field. The credit that had been applied on completion is
// returned so the caller can restore the customer's balance.
//
// Resetting never reverts a completed sale back to in_progress; completion
// is one-way.
func (s *Sale) ResetStep(customerID kernel.UUID) (restoredCredit kernel.Money, err error) {
	if err = s.ensureStepUpdatable("reset delivery step"); err != nil {
		return kernel.Money{}, err
	}

	step, err := s.stepByCustomer(customerID)
	if err != nil {
		return kernel.Money{}, err
	}

	return step.reset()
}

// PercentComplete returns the share of settled stops (completed plus
// skipped) against the total, as a percentage rounded to one decimal place.
// A zero total reports 0 rather than dividing by zero. Both the aggregate
// and the read models derive their percentage through this function.
func PercentComplete(settled, total int) float64 {
	if total <= 0 {
		return 0
	}
	ratio := float64(settled) / float64(total)
	return math.Round(ratio*1000) / 10
}

// Progress is the read-side aggregation over a sale's delivery steps.
type Progress struct {
	Total              int
	Completed          int
	Skipped            int
	Pending            int
	PercentComplete    float64
	TotalCollected     kernel.Money
	TotalCreditApplied kernel.Money
	TotalExpected      kernel.Money
	TotalSkippedAmount kernel.Money
}

// Progress derives the current delivery progress from the sale's steps and
// items. percent_complete counts completed and skipped stops against the
// total, rounded to one decimal place; a sale without steps reports 0
// rather than dividing by zero.
func (s *Sale) Progress() Progress {
	p := Progress{
		Total:              len(s.steps),
		TotalCollected:     kernel.ZeroMoney(),
		TotalCreditApplied: kernel.ZeroMoney(),
		TotalExpected:      kernel.ZeroMoney(),
		TotalSkippedAmount: kernel.ZeroMoney(),
	}

	expectedByCustomer := make(map[kernel.UUID]kernel.Money)
	for _, item := range s.items {
		expectedByCustomer[item.CustomerID()] = expectedByCustomer[item.CustomerID()].Add(item.Revenue())
		p.TotalExpected = p.TotalExpected.Add(item.Revenue())
	}

	for _, step := range s.steps {
		switch step.Status() {
		case StepCompleted:
			p.Completed++
			if step.AmountCollected() != nil {
				p.TotalCollected = p.TotalCollected.Add(*step.AmountCollected())
			}
			if step.CreditApplied() != nil {
				p.TotalCreditApplied = p.TotalCreditApplied.Add(*step.CreditApplied())
			}
		case StepSkipped:
			p.Skipped++
			p.TotalSkippedAmount = p.TotalSkippedAmount.Add(expectedByCustomer[step.CustomerID()])
		default:
			p.Pending++
		}
	}

	p.PercentComplete = PercentComplete(p.Completed+p.Skipped, p.Total)

	return p
}

// ensureStepUpdatable guards step mutations: they are permitted while the
// delivery is in progress, and on a completed sale (to allow resets), but
// never before delivery starts.
func (s *Sale) ensureStepUpdatable(operation string) error {
	if s.status == StatusInProgress || s.status == StatusCompleted {
		return nil
	}
	return errs.NewInvalidStateErrorWithCause(
		operation,
		s.status.String(),
		fmt.Errorf("sale %s is not in_progress", s.id),
	)
}

// recheckCompletion transitions the sale to completed once no step remains
// pending. Idempotent: a sale that already completed stays completed.
func (s *Sale) recheckCompletion() {
	if s.status != StatusInProgress {
		return
	}

	for _, step := range s.steps {
		if step.Status() == StepPending {
			return
		}
	}

	s.status = StatusCompleted
}

func (s *Sale) stepByCustomer(customerID kernel.UUID) (*DeliveryStep, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	for _, step := range s.steps {
		if step.CustomerID().IsEqual(customerID) {
			return step, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("delivery step for customer", customerID.String())
}

// validateCustomerPermutation checks that proposed is exactly a permutation
// of expected: no additions, no omissions, no duplicates.
func (s *Sale) validateCustomerPermutation(proposed, expected []kernel.UUID) error {
	if len(proposed) != len(expected) {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer order",
			fmt.Errorf("%d customers proposed, %d in route", len(proposed), len(expected)),
		)
	}

	expectedSet := make(map[kernel.UUID]struct{}, len(expected))
	for _, id := range expected {
		expectedSet[id] = struct{}{}
	}

	seen := make(map[kernel.UUID]struct{}, len(proposed))
	for _, id := range proposed {
		if _, ok := expectedSet[id]; !ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"customer order",
				fmt.Errorf("customer %s is not part of the route", id),
			)
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"customer order",
				fmt.Errorf("customer %s appears more than once", id),
			)
		}
		seen[id] = struct{}{}
	}

	return nil
}

func (s *Sale) sortSteps() {
	sort.Slice(s.steps, func(i, j int) bool {
		return s.steps[i].SequenceOrder() < s.steps[j].SequenceOrder()
	})
}

func (s *Sale) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Sale) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	s.ownerID = ownerID
	return nil
}

func (s *Sale) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}
	s.deliveryDate = deliveryDate
	return nil
}

func (s *Sale) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	s.items = items
	return nil
}
