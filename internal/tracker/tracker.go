// Package tracker implements the live GPS tracking session for a drive.
// A Tracker consumes position samples pushed by a PositionSource, filters
// jitter below a 5 metre noise floor, and accumulates distance and speed
// until the session is finished and summarized.
package tracker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Fxloydd/marti-takip-api/internal/geo"
)

// noiseFloorKm is the minimum distance between accepted samples.
// GPS jitter at the metre scale would otherwise accumulate spurious
// distance while the car is parked.
const noiseFloorKm = 0.005

// Invalid state transitions. Handlers should map these to HTTP 409.
var (
	ErrAlreadyTracking = errors.New("tracking already in progress")
	ErrNotTracking     = errors.New("no tracking in progress")
	ErrAlreadyPaused   = errors.New("tracking already paused")
	ErrNotPaused       = errors.New("tracking is not paused")
)

// Cause classifies a positioning failure reported by the source.
type Cause string

const (
	CausePermissionDenied Cause = "permission-denied"
	CauseUnavailable      Cause = "unavailable"
	CauseTimeout          Cause = "timeout"
)

// WatchError is a non-fatal positioning failure. It is recorded on the
// tracker state for the UI to show; the session stays startable.
type WatchError struct {
	Cause   Cause
	Message string
}

func (e WatchError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Cause, e.Message)
	}
	return string(e.Cause)
}

// Sample is one raw position reading pushed by the source.
// SpeedMS is the device-reported speed in metres per second; sources that
// cannot measure speed report 0.
type Sample struct {
	Lat     float64
	Lng     float64
	SpeedMS float64
	At      time.Time
}

// Subscription is the handle owned by a live watch. Stopping it releases
// the underlying source resources.
type Subscription interface {
	Stop()
}

// PositionSource delivers position samples at its own cadence.
// Implementations must serialize their callbacks: onSample and onError are
// never invoked concurrently with each other.
type PositionSource interface {
	Watch(onSample func(Sample), onError func(WatchError)) (Subscription, error)
}

// Coordinate is one accepted point of the live route.
type Coordinate struct {
	Lat float64   `json:"lat"`
	Lng float64   `json:"lng"`
	At  time.Time `json:"timestamp"`
}

// State is a read-only snapshot of the session for live display.
type State struct {
	Tracking   bool         `json:"is_tracking"`
	Paused     bool         `json:"is_paused"`
	DistanceKm float64      `json:"total_distance_km"`
	SpeedKmh   float64      `json:"current_speed_kmh"`
	StartTime  time.Time    `json:"start_time"`
	Route      []Coordinate `json:"route"`
	LastError  string       `json:"error,omitempty"`
}

// Summary is returned by Finish. Route is the caller's copy — the tracker
// clears its own state on finish.
type Summary struct {
	StartTime       time.Time
	EndTime         time.Time
	DistanceKm      float64
	DurationMinutes float64
	Route           []Coordinate
}

// Tracker is the single logical tracking session.
// All methods are safe for concurrent use; the source's sample callback and
// HTTP handlers race for the same state, so a mutex serializes them.
type Tracker struct {
	src PositionSource
	now func() time.Time

	mu           sync.Mutex
	sub          Subscription
	tracking     bool
	paused       bool
	route        []Coordinate
	anchor       *Coordinate // last accepted sample, distance is measured from here
	distanceKm   float64
	speedKmh     float64
	startTime    time.Time
	pausedTotal  time.Duration
	pauseStarted time.Time
	lastErr      string
}

// New constructs an idle Tracker reading positions from src.
func New(src PositionSource) *Tracker {
	return &Tracker{src: src, now: time.Now}
}

// NewWithClock is New with an injectable clock, for tests.
func NewWithClock(src PositionSource, now func() time.Time) *Tracker {
	return &Tracker{src: src, now: now}
}

// Start resets all accumulators and begins consuming the position stream.
// Only valid from idle: a second Start while a session is live returns
// ErrAlreadyTracking. A source that cannot watch (no positioning capability)
// is recorded on the state error field and returned; the tracker stays idle
// and startable.
func (t *Tracker) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tracking {
		return ErrAlreadyTracking
	}

	sub, err := t.src.Watch(t.onSample, t.onError)
	if err != nil {
		t.lastErr = err.Error()
		return fmt.Errorf("tracker.Start: %w", err)
	}

	t.sub = sub
	t.tracking = true
	t.paused = false
	t.route = nil
	t.anchor = nil
	t.distanceKm = 0
	t.speedKmh = 0
	t.startTime = t.now()
	t.pausedTotal = 0
	t.pauseStarted = time.Time{}
	t.lastErr = ""
	return nil
}

// onSample is the position stream callback.
// Samples are ignored entirely while paused: no accumulation and no anchor
// update, so resuming never attributes movement during the pause to the trip.
func (t *Tracker) onSample(s Sample) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking || t.paused {
		return
	}

	// Speed is live display state and bypasses the noise filter.
	t.speedKmh = s.SpeedMS * 3.6

	at := s.At
	if at.IsZero() {
		at = t.now()
	}
	coord := Coordinate{Lat: s.Lat, Lng: s.Lng, At: at}

	if t.anchor == nil {
		// First sample of the session establishes the anchor, no distance.
		t.anchor = &coord
		t.route = append(t.route, coord)
		return
	}

	dist := geo.DistanceKm(t.anchor.Lat, t.anchor.Lng, coord.Lat, coord.Lng)
	if dist <= noiseFloorKm {
		return
	}

	t.distanceKm += dist
	t.anchor = &coord
	t.route = append(t.route, coord)
}

// onError records a positioning failure for the UI. Non-fatal: the watch
// stays live and later samples are still consumed.
func (t *Tracker) onError(e WatchError) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastErr = e.Error()
}

// Pause freezes distance accumulation. Valid only while actively tracking.
func (t *Tracker) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking {
		return ErrNotTracking
	}
	if t.paused {
		return ErrAlreadyPaused
	}

	t.paused = true
	t.pauseStarted = t.now()
	t.speedKmh = 0
	return nil
}

// Resume ends a pause, adding its length to the cumulative paused duration.
// The anchor is untouched by the pause, so the next accepted sample measures
// from wherever tracking last left off.
func (t *Tracker) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking {
		return ErrNotTracking
	}
	if !t.paused {
		return ErrNotPaused
	}

	t.pausedTotal += t.now().Sub(t.pauseStarted)
	t.pauseStarted = time.Time{}
	t.paused = false
	return nil
}

// Finish stops the position stream and returns the session summary, then
// resets the tracker to idle. Valid from tracking or paused state.
// Duration excludes paused time, including a pause still open at finish.
func (t *Tracker) Finish() (Summary, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking {
		return Summary{}, ErrNotTracking
	}

	if t.sub != nil {
		t.sub.Stop()
		t.sub = nil
	}

	now := t.now()
	paused := t.pausedTotal
	if t.paused {
		paused += now.Sub(t.pauseStarted)
	}

	minutes := (now.Sub(t.startTime) - paused).Minutes()
	if minutes < 0 {
		minutes = 0
	}

	sum := Summary{
		StartTime:       t.startTime,
		EndTime:         now,
		DistanceKm:      t.distanceKm,
		DurationMinutes: minutes,
		Route:           t.route,
	}

	t.tracking = false
	t.paused = false
	t.route = nil
	t.anchor = nil
	t.distanceKm = 0
	t.speedKmh = 0
	t.startTime = time.Time{}
	t.pausedTotal = 0
	t.pauseStarted = time.Time{}

	return sum, nil
}

// ElapsedMinutes returns the active (non-paused) minutes since start,
// for live display. Returns 0 when idle. Does not mutate state.
func (t *Tracker) ElapsedMinutes() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking {
		return 0
	}

	paused := t.pausedTotal
	if t.paused {
		paused += t.now().Sub(t.pauseStarted)
	}
	m := (t.now().Sub(t.startTime) - paused).Minutes()
	if m < 0 {
		return 0
	}
	return m
}

// State returns a copy of the live session state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	route := make([]Coordinate, len(t.route))
	copy(route, t.route)

	return State{
		Tracking:   t.tracking,
		Paused:     t.paused,
		DistanceKm: t.distanceKm,
		SpeedKmh:   t.speedKmh,
		StartTime:  t.startTime,
		Route:      route,
		LastError:  t.lastErr,
	}
}
