package sale

import (
	"fmt"

	"breakfast/internal/pkg/errs"
)

// StepStatus represents the state of a single delivery step.
//
// State transitions:
//
//	Pending ──┬──> Completed
//	          │        ^
//	          └──> Skipped
//	                   │
//	  (reset to Pending from any state; Skipped may also complete)
//
// A completed step leaves the route's pending set for good unless explicitly
// reset; a skipped step may be reset to pending or completed directly.
type StepStatus int

const (
	// StepStatusUnknown represents an invalid or undefined step status.
	StepStatusUnknown StepStatus = iota

	// StepPending is the initial status of every step when the route is generated.
	StepPending

	// StepCompleted indicates the customer was visited and the amount collected.
	StepCompleted

	// StepSkipped indicates the stop was skipped, with a recorded reason.
	StepSkipped
)

func stepStatusStrings() map[StepStatus]string {
	return map[StepStatus]string{
		StepStatusUnknown: "unknown",
		StepPending:       "pending",
		StepCompleted:     "completed",
		StepSkipped:       "skipped",
	}
}

// Validate checks if the StepStatus value is valid.
func (s StepStatus) Validate() error {
	switch s {
	case StepPending, StepCompleted, StepSkipped:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("step status", fmt.Errorf("%d is not a valid step status", s))
	}
}

// String returns the wire name of the step status ("pending", "completed",
// "skipped"). Invalid values return "unknown".
func (s StepStatus) String() string {
	if str, ok := stepStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StepStatusFromString parses a wire step status name into a StepStatus.
func StepStatusFromString(s string) (StepStatus, error) {
	for status, name := range stepStatusStrings() {
		if name == s && status != StepStatusUnknown {
			return status, nil
		}
	}
	return StepStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"step status",
		fmt.Errorf("%q is not a valid step status", s),
	)
}

// Complete transitions the step status to Completed.
//
// Valid from Pending and Skipped (a skipped stop can still be served later).
// Completing an already completed step is rejected.
func (s StepStatus) Complete() (StepStatus, error) {
	if s != StepPending && s != StepSkipped {
		return 0, errs.NewInvalidStateError("complete delivery step", s.String())
	}
	return StepCompleted, nil
}

// Skip transitions the step status to Skipped.
//
// Valid from Pending only; completed steps must be reset first.
func (s StepStatus) Skip() (StepStatus, error) {
	if s != StepPending {
		return 0, errs.NewInvalidStateError("skip delivery step", s.String())
	}
	return StepSkipped, nil
}

// Reset transitions the step status back to Pending.
// Always permitted, from any prior status, to support correcting mistakes.
func (s StepStatus) Reset() (StepStatus, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return StepPending, nil
}
