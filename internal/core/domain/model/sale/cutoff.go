package sale

import "time"

// DefaultCutoffHours is the default order-cutoff lead time before the
// delivery date. Overridable via configuration (ORDER_CUTOFF_HOURS).
const DefaultCutoffHours = 36

// CutoffTime returns the instant after which a sale for the given delivery
// date no longer accepts orders. The delivery date is normalized to the
// start of its day before the cutoff lead time is subtracted.
func CutoffTime(deliveryDate time.Time, cutoffHours int) time.Time {
	startOfDay := time.Date(
		deliveryDate.Year(), deliveryDate.Month(), deliveryDate.Day(),
		0, 0, 0, 0, deliveryDate.Location(),
	)
	return startOfDay.Add(-time.Duration(cutoffHours) * time.Hour)
}

// AcceptsOrders decides whether a sale still accepts new orders.
//
// It is a pure function of its inputs: true only when the sale is draft and
// now is at or before the cutoff instant. cutoffHours is injected from
// configuration, never read from ambient state, so the policy is
// deterministic under an injected clock.
func AcceptsOrders(status Status, deliveryDate, now time.Time, cutoffHours int) bool {
	if status != StatusDraft {
		return false
	}
	return !now.After(CutoffTime(deliveryDate, cutoffHours))
}

// HoursUntilCutoff returns the (non-negative) number of hours remaining
// before the cutoff instant, for read models that display the window.
func HoursUntilCutoff(deliveryDate, now time.Time, cutoffHours int) float64 {
	remaining := CutoffTime(deliveryDate, cutoffHours).Sub(now).Hours()
	if remaining < 0 {
		return 0
	}
	return remaining
}
