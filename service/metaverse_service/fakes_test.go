package metaverse_service

import (
	"sync"
	"time"

	"ggplay-backend/common"
	"ggplay-backend/database"
	"ggplay-backend/model"
)

// fakeStore is an in-memory Store for tests.
type fakeStore struct {
	mu    sync.Mutex
	rows  map[string]*model.Metaverse
	order []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[string]*model.Metaverse)}
}

func (f *fakeStore) Create(mv *model.Metaverse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *mv
	f.rows[mv.ID] = &cp
	f.order = append(f.order, mv.ID)
	return nil
}

func (f *fakeStore) GetByID(id string) (*model.Metaverse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mv, ok := f.rows[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *mv
	return &cp, nil
}

func (f *fakeStore) GetByIDForUser(id, userID string) (*model.Metaverse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mv, ok := f.rows[id]
	if !ok || mv.UserID != userID {
		return nil, database.ErrNotFound
	}
	cp := *mv
	return &cp, nil
}

func (f *fakeStore) ListByUser(userID string) ([]*model.Metaverse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Metaverse
	for i := len(f.order) - 1; i >= 0; i-- {
		if mv, ok := f.rows[f.order[i]]; ok && mv.UserID == userID {
			cp := *mv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStore) SetStatus(id string, status model.MetaverseStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	mv, ok := f.rows[id]
	if !ok {
		return database.ErrNotFound
	}
	mv.Status = status
	return nil
}

func (f *fakeStore) SetStatusPlayers(id string, status model.MetaverseStatus, players int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	mv, ok := f.rows[id]
	if !ok {
		return database.ErrNotFound
	}
	mv.Status = status
	mv.PlayersOnline = players
	return nil
}

func (f *fakeStore) AccrueUsage(id string, minutes, hours int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	mv, ok := f.rows[id]
	if !ok {
		return database.ErrNotFound
	}
	mv.UptimeMinutes += minutes
	mv.HoursUsed += hours
	return nil
}

func (f *fakeStore) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return database.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

// fakeScheduler collects delayed functions and tickers so tests drive
// time by hand.
type fakeScheduler struct {
	mu      sync.Mutex
	pending []func()
	tickers []*fakeTicker
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{}
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) {
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

func (s *fakeScheduler) NewTicker(d time.Duration) common.Ticker {
	tk := &fakeTicker{ch: make(chan time.Time, 1)}
	s.mu.Lock()
	s.tickers = append(s.tickers, tk)
	s.mu.Unlock()
	return tk
}

// fire runs the oldest pending delayed function.
func (s *fakeScheduler) fire() {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return
	}
	fn := s.pending[0]
	s.pending = s.pending[1:]
	s.mu.Unlock()

	fn()
}

// fireAll drains the delayed queue, including functions scheduled while
// draining.
func (s *fakeScheduler) fireAll() {
	for {
		s.mu.Lock()
		n := len(s.pending)
		s.mu.Unlock()
		if n == 0 {
			return
		}
		s.fire()
	}
}

func (s *fakeScheduler) lastTicker() *fakeTicker {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tickers) == 0 {
		return nil
	}
	return s.tickers[len(s.tickers)-1]
}

type fakeTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }

func (t *fakeTicker) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

func (t *fakeTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// tick pushes one tick into the ticker's channel.
func (t *fakeTicker) tick() {
	t.ch <- time.Now()
}
