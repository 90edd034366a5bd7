package domain

import (
	"encoding/json"
	"math"
)

// GoalProgress pairs an earnings target with the amount earned so far.
// It is derived on every dashboard computation, never stored.
type GoalProgress struct {
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
}

// Percentage returns progress as a whole percent, clamped to [0, 100].
// A non-positive target yields 0 so callers never divide by zero.
func (g GoalProgress) Percentage() int {
	if g.Target <= 0 {
		return 0
	}
	p := int(math.Round(g.Current / g.Target * 100))
	if p > 100 {
		return 100
	}
	return p
}

// Achieved reports whether earnings meet or exceed the target.
// Unlike Percentage it does not round — 2999 of 3000 displays as 100%
// but is not achieved.
func (g GoalProgress) Achieved() bool {
	return g.Target > 0 && g.Current >= g.Target
}

// Remaining returns how much is still missing, floored at zero.
func (g GoalProgress) Remaining() float64 {
	if r := g.Target - g.Current; r > 0 {
		return r
	}
	return 0
}

// Surplus returns earnings beyond the target, or 0 when not achieved.
func (g GoalProgress) Surplus() float64 {
	if g.Achieved() && g.Current > g.Target {
		return g.Current - g.Target
	}
	return 0
}

// MarshalJSON serializes the derived values alongside the raw pair so the
// UI renders progress without re-deriving the clamp rules.
func (g GoalProgress) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Target     float64 `json:"target"`
		Current    float64 `json:"current"`
		Percentage int     `json:"percentage"`
		Achieved   bool    `json:"achieved"`
		Remaining  float64 `json:"remaining"`
		Surplus    float64 `json:"surplus"`
	}{g.Target, g.Current, g.Percentage(), g.Achieved(), g.Remaining(), g.Surplus()})
}
