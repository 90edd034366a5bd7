// Package notify pushes dashboard events (new payment, goal reached) to the
// team channel. The transport is pluggable; Telegram is the shipped one.
package notify

// Notifier receives dashboard events. Implementations must be best-effort:
// a failed notification is logged, never propagated into the request path.
type Notifier interface {
	PaymentAdded(amount float64, user string)
	PaymentDeleted()
	GoalReached(goal string) // "daily" or "weekly"
}

// Noop is the Notifier used when no transport is configured.
type Noop struct{}

func (Noop) PaymentAdded(float64, string) {}
func (Noop) PaymentDeleted()              {}
func (Noop) GoalReached(string)           {}
