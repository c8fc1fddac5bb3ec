package metaverse_service

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"ggplay-backend/common"
	"ggplay-backend/model"

	"github.com/google/uuid"
)

// LifecycleOptions simulation timings and failure injection.
type LifecycleOptions struct {
	StartDelay       time.Duration // STARTING resolution delay
	StopDelay        time.Duration // STOPPING resolution delay
	RestartStepDelay time.Duration // Per-step delay during restart
	ErrorRate        float64       // Probability a start resolves to ERROR
	Seed             int64         // Rand seed, 0 means time-based
}

// LifecycleService enforces legal metaverse status transitions and
// simulates provisioning latency. Every delayed effect re-reads the row
// and no-ops unless it is still in the transient state the effect
// assumes, so a stale timer never clobbers a state reached through a
// different path (delete-while-starting, concurrent stop, ...).
type LifecycleService struct {
	store   Store
	tracker *UsageTracker
	sched   common.Scheduler
	opts    LifecycleOptions

	randMu sync.Mutex
	rand   *rand.Rand
}

// NewLifecycleService creates a lifecycle manager.
func NewLifecycleService(store Store, tracker *UsageTracker, sched common.Scheduler, opts LifecycleOptions) *LifecycleService {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LifecycleService{
		store:   store,
		tracker: tracker,
		sched:   sched,
		opts:    opts,
		rand:    rand.New(rand.NewSource(seed)),
	}
}

// Create provisions a new instance in STOPPED state.
func (s *LifecycleService) Create(userID, name string, kind model.MetaverseKind, region model.Region) (*model.Metaverse, error) {
	if region == "" {
		region = model.RegionAsia
	}
	mv := &model.Metaverse{
		ID:      uuid.NewString(),
		UserID:  userID,
		Name:    name,
		Kind:    kind,
		Region:  region,
		Status:  model.MetaverseStatusStopped,
		Version: "v1.0.0",
	}
	if err := s.store.Create(mv); err != nil {
		return nil, err
	}
	return mv, nil
}

// List returns a user's instances, newest first.
func (s *LifecycleService) List(userID string) ([]*model.Metaverse, error) {
	return s.store.ListByUser(userID)
}

// Get returns one instance owned by the user.
func (s *LifecycleService) Get(id, userID string) (*model.Metaverse, error) {
	return s.store.GetByIDForUser(id, userID)
}

// Start moves a STOPPED or ERROR instance to STARTING and schedules the
// delayed resolution to RUNNING (or ERROR with opts.ErrorRate probability).
func (s *LifecycleService) Start(id, userID string) (*model.Metaverse, error) {
	mv, err := s.store.GetByIDForUser(id, userID)
	if err != nil {
		return nil, err
	}

	if mv.Status != model.MetaverseStatusStopped && mv.Status != model.MetaverseStatusError {
		return nil, fmt.Errorf("%w: metaverse must be STOPPED or ERROR to start", ErrInvalidTransition)
	}

	if err := s.store.SetStatus(id, model.MetaverseStatusStarting); err != nil {
		return nil, err
	}

	s.sched.AfterFunc(s.opts.StartDelay, func() {
		s.resolveStart(id)
	})

	return s.store.GetByID(id)
}

// resolveStart commits the delayed half of a start. Aborts silently when
// the row is gone or no longer STARTING.
func (s *LifecycleService) resolveStart(id string) {
	current, err := s.store.GetByID(id)
	if err != nil || current.Status != model.MetaverseStatusStarting {
		return // State changed externally
	}

	if s.roll() < s.opts.ErrorRate {
		if err := s.store.SetStatusPlayers(id, model.MetaverseStatusError, 0); err != nil {
			log.Printf("Failed to resolve start for metaverse %s: %v", id, err)
		}
		return
	}

	players := s.randomPlayers()
	if err := s.store.SetStatusPlayers(id, model.MetaverseStatusRunning, players); err != nil {
		log.Printf("Failed to resolve start for metaverse %s: %v", id, err)
		return
	}
	s.tracker.StartTracking(id)
}

// Stop moves a RUNNING or ERROR instance to STOPPING and schedules the
// delayed resolution to STOPPED. Usage tracking stops immediately.
func (s *LifecycleService) Stop(id, userID string) (*model.Metaverse, error) {
	mv, err := s.store.GetByIDForUser(id, userID)
	if err != nil {
		return nil, err
	}

	if mv.Status != model.MetaverseStatusRunning && mv.Status != model.MetaverseStatusError {
		return nil, fmt.Errorf("%w: metaverse must be RUNNING or ERROR to stop", ErrInvalidTransition)
	}

	s.tracker.StopTracking(id)

	if err := s.store.SetStatus(id, model.MetaverseStatusStopping); err != nil {
		return nil, err
	}

	s.sched.AfterFunc(s.opts.StopDelay, func() {
		current, err := s.store.GetByID(id)
		if err != nil || current.Status != model.MetaverseStatusStopping {
			return // State changed externally
		}
		if err := s.store.SetStatusPlayers(id, model.MetaverseStatusStopped, 0); err != nil {
			log.Printf("Failed to resolve stop for metaverse %s: %v", id, err)
		}
	})

	return s.store.GetByID(id)
}

// Restart cycles a RUNNING instance through STOPPING and STARTING back to
// RUNNING with a fresh player count, one step per RestartStepDelay.
func (s *LifecycleService) Restart(id, userID string) (*model.Metaverse, error) {
	mv, err := s.store.GetByIDForUser(id, userID)
	if err != nil {
		return nil, err
	}

	if mv.Status != model.MetaverseStatusRunning {
		return nil, fmt.Errorf("%w: metaverse must be RUNNING to restart", ErrInvalidTransition)
	}

	s.tracker.StopTracking(id)

	if err := s.store.SetStatus(id, model.MetaverseStatusStopping); err != nil {
		return nil, err
	}

	s.sched.AfterFunc(s.opts.RestartStepDelay, func() {
		current, err := s.store.GetByID(id)
		if err != nil || current.Status != model.MetaverseStatusStopping {
			return
		}
		if err := s.store.SetStatus(id, model.MetaverseStatusStarting); err != nil {
			log.Printf("Failed to advance restart for metaverse %s: %v", id, err)
			return
		}

		s.sched.AfterFunc(s.opts.RestartStepDelay, func() {
			current, err := s.store.GetByID(id)
			if err != nil || current.Status != model.MetaverseStatusStarting {
				return
			}
			players := s.randomPlayers()
			if err := s.store.SetStatusPlayers(id, model.MetaverseStatusRunning, players); err != nil {
				log.Printf("Failed to finish restart for metaverse %s: %v", id, err)
				return
			}
			s.tracker.StartTracking(id)
		})
	})

	return s.store.GetByID(id)
}

// Delete removes an instance from any state. Tracking is torn down
// unconditionally; any in-flight delayed resolution no-ops on its
// state re-check once the row is gone.
func (s *LifecycleService) Delete(id, userID string) error {
	if _, err := s.store.GetByIDForUser(id, userID); err != nil {
		return err
	}

	s.tracker.StopTracking(id)

	return s.store.Delete(id)
}

func (s *LifecycleService) roll() float64 {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.rand.Float64()
}

// randomPlayers returns a simulated online count in [5,24].
func (s *LifecycleService) randomPlayers() int {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return 5 + s.rand.Intn(20)
}
