package tracker

import (
	"errors"
	"sync"
)

// ErrSourceBusy is returned by PushSource.Watch when a subscription is
// already live. A tracker only ever holds one watch at a time.
var ErrSourceBusy = errors.New("position source already watched")

// PushSource adapts an externally driven feed into a PositionSource.
// The device posts its readings over HTTP and the handler forwards them
// via Push; the tracker consumes them through the Watch callbacks.
type PushSource struct {
	mu       sync.Mutex
	onSample func(Sample)
	onError  func(WatchError)
}

// NewPushSource returns an unwatched PushSource.
func NewPushSource() *PushSource {
	return &PushSource{}
}

// Watch registers the callbacks and hands back the subscription handle.
// Returns ErrSourceBusy if a previous subscription was never stopped.
func (s *PushSource) Watch(onSample func(Sample), onError func(WatchError)) (Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.onSample != nil {
		return nil, ErrSourceBusy
	}
	s.onSample = onSample
	s.onError = onError
	return &pushSubscription{src: s}, nil
}

// Push forwards one sample to the current subscriber.
// Returns false when nothing is watching (sample dropped).
func (s *PushSource) Push(sample Sample) bool {
	s.mu.Lock()
	cb := s.onSample
	s.mu.Unlock()

	if cb == nil {
		return false
	}
	cb(sample)
	return true
}

// Fail forwards a positioning failure to the current subscriber.
// Returns false when nothing is watching.
func (s *PushSource) Fail(e WatchError) bool {
	s.mu.Lock()
	cb := s.onError
	s.mu.Unlock()

	if cb == nil {
		return false
	}
	cb(e)
	return true
}

type pushSubscription struct {
	src  *PushSource
	once sync.Once
}

// Stop releases the subscription. Safe to call more than once.
func (p *pushSubscription) Stop() {
	p.once.Do(func() {
		p.src.mu.Lock()
		p.src.onSample = nil
		p.src.onError = nil
		p.src.mu.Unlock()
	})
}
