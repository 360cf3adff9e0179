package sale

import (
	"fmt"

	"breakfast/internal/pkg/errs"
)

// Status represents the lifecycle state of a sale.
// It implements a state machine with defined transitions to ensure sales
// follow the correct business workflow.
//
// State transitions:
//
//	Draft ──> Closed ──> InProgress ──> Completed
//	  ^          │
//	  └──────────┘
//	 (reopen allowed until delivery starts)
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial status when a sale is first created.
	// Draft sales accept new orders while the cutoff policy allows it.
	StatusDraft

	// StatusClosed indicates the sale no longer accepts orders and is
	// waiting for delivery to start.
	StatusClosed

	// StatusInProgress indicates the delivery route has been generated and
	// delivery is underway.
	StatusInProgress

	// StatusCompleted indicates every delivery step has left the pending
	// state. This is a final state with no further transitions allowed.
	StatusCompleted
)

// statusStrings maps Status values to their wire representations.
func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusDraft:      "draft",
		StatusClosed:     "closed",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
	}
}

// statusTransitions is the single source of truth for allowed sale
// transitions. Every transition request is checked against this table so
// that no scattered status comparisons can disagree.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusDraft:      {StatusClosed},
		StatusClosed:     {StatusDraft, StatusInProgress},
		StatusInProgress: {StatusCompleted},
		StatusCompleted:  {},
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Draft, Closed, InProgress, Completed.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	switch s {
	case StatusDraft, StatusClosed, StatusInProgress, StatusCompleted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid sale status", s))
	}
}

// String returns the wire name of the status ("draft", "closed",
// "in_progress", "completed"). Invalid values return "unknown".
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire status name into a Status.
// Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid sale status", s))
}

// CanTransitionTo reports whether the transition from the current status to
// target is listed in the transition table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo transitions the status to target, consulting the transition
// table.
//
// Returns:
//   - (target, nil) on valid transition
//   - (0, *errs.InvalidStateError) naming the offending pair otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidStateError(
			fmt.Sprintf("transition to %s", target),
			s.String(),
		)
	}

	return target, nil
}
