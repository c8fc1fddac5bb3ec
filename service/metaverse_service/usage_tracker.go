package metaverse_service

import (
	"log"
	"sync"
	"time"

	"ggplay-backend/common"
	"ggplay-backend/model"
)

// UsageTracker accrues uptime and usage-hours for RUNNING instances.
// Registrations are in-process only; after a restart, RUNNING rows stop
// accruing until a lifecycle action re-arms tracking.
type UsageTracker struct {
	store    Store
	sched    common.Scheduler
	interval time.Duration

	mu      sync.Mutex
	tickers map[string]common.Ticker
	stops   map[string]chan struct{}
}

// NewUsageTracker creates a tracker ticking every interval per tracked id.
func NewUsageTracker(store Store, sched common.Scheduler, interval time.Duration) *UsageTracker {
	return &UsageTracker{
		store:    store,
		sched:    sched,
		interval: interval,
		tickers:  make(map[string]common.Ticker),
		stops:    make(map[string]chan struct{}),
	}
}

// StartTracking registers a periodic accrual tick for the instance.
// An existing registration for the same id is cancelled first, so
// re-arming is idempotent: one registration per id.
func (t *UsageTracker) StartTracking(id string) {
	t.StopTracking(id)

	ticker := t.sched.NewTicker(t.interval)
	stop := make(chan struct{})

	t.mu.Lock()
	t.tickers[id] = ticker
	t.stops[id] = stop
	t.mu.Unlock()

	go t.run(id, ticker, stop)
}

// StopTracking cancels the registration for the instance, if any.
func (t *UsageTracker) StopTracking(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ticker, ok := t.tickers[id]; ok {
		ticker.Stop()
		close(t.stops[id])
		delete(t.tickers, id)
		delete(t.stops, id)
	}
}

// IsTracking reports whether a registration exists for the instance.
func (t *UsageTracker) IsTracking(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.tickers[id]
	return ok
}

// StopAll tears down every registration (process shutdown).
func (t *UsageTracker) StopAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, ticker := range t.tickers {
		ticker.Stop()
		close(t.stops[id])
		delete(t.tickers, id)
		delete(t.stops, id)
	}
}

func (t *UsageTracker) run(id string, ticker common.Ticker, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			if !t.tick(id) {
				t.deregister(id, ticker)
				return
			}
		}
	}
}

// deregister removes the registration only if it still belongs to this
// goroutine's ticker, so a concurrent re-arm is never torn down.
func (t *UsageTracker) deregister(id string, ticker common.Ticker) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tickers[id] == ticker {
		ticker.Stop()
		close(t.stops[id])
		delete(t.tickers, id)
		delete(t.stops, id)
	}
}

// tick accrues one minute of usage. Returns false when tracking should
// deregister: the row is gone or has left RUNNING (self-healing against
// external state changes).
func (t *UsageTracker) tick(id string) bool {
	mv, err := t.store.GetByID(id)
	if err != nil || mv.Status != model.MetaverseStatusRunning {
		return false
	}

	// One uptime minute per tick. Player-hours accrue only in whole units:
	// floor(playersOnline/60) per tick, fractional remainders are dropped,
	// matching the billing numbers clients already see.
	hours := mv.PlayersOnline / 60

	if err := t.store.AccrueUsage(id, 1, hours); err != nil {
		log.Printf("Failed to accrue usage for metaverse %s: %v", id, err)
		return false
	}
	return true
}
