package common

import "time"

// Scheduler abstracts timer scheduling so services can run against virtual
// time in tests. Delayed functions scheduled with AfterFunc are never
// cancelled by callers; a delayed effect is expected to re-check entity
// state before committing.
type Scheduler interface {
	// AfterFunc runs fn on its own goroutine after d has elapsed.
	AfterFunc(d time.Duration, fn func())

	// NewTicker returns a ticker firing every d until stopped.
	NewTicker(d time.Duration) Ticker
}

// Ticker is a stoppable periodic tick source.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// RealScheduler schedules against the wall clock.
type RealScheduler struct{}

// NewRealScheduler create a wall-clock scheduler
func NewRealScheduler() *RealScheduler {
	return &RealScheduler{}
}

func (s *RealScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

func (s *RealScheduler) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }

func (r *realTicker) Stop() { r.t.Stop() }
