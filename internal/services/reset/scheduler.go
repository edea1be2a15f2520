package reset

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/rebirth/internal/dependencies/clock"
	"github.com/mcoot/rebirth/internal/metrics"
)

// resetTimeout bounds a single clear against a stalled backend
const resetTimeout = time.Minute

// Clearer removes every stored identity
type Clearer interface {
	ClearIdentities(ctx context.Context) (int, error)
}

// Scheduler clears all identities at every local midnight.
// It owns at most one armed timer; the next one is armed only after the
// current clear has finished, whether or not it succeeded.
type Scheduler struct {
	clearer  Clearer
	clock    clock.Clock
	location *time.Location
	logger   *slog.Logger

	fireMu sync.Mutex // serialises clears

	mu      sync.Mutex
	running bool
	gen     uint64
	timer   clock.Timer
	next    time.Time
}

// New creates a Scheduler. A nil location means time.Local.
func New(clearer Clearer, clk clock.Clock, location *time.Location, logger *slog.Logger) *Scheduler {
	if location == nil {
		location = time.Local
	}
	return &Scheduler{
		clearer:  clearer,
		clock:    clk,
		location: location,
		logger:   logger,
	}
}

// NextMidnight returns the first midnight in loc strictly after now
func NextMidnight(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}

// Start arms the timer for the next midnight. Calling Start on a running
// scheduler does nothing.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.gen++
	s.armLocked()
}

// Stop disarms the timer and waits for an in-flight clear to finish.
// It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.running = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.next = time.Time{}
	s.mu.Unlock()

	s.fireMu.Lock()
	s.fireMu.Unlock() //nolint:staticcheck // wait for in-flight clear
}

// NextReset returns when the scheduler will next fire, or the zero time if stopped
func (s *Scheduler) NextReset() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

func (s *Scheduler) armLocked() {
	now := s.clock.Now()
	next := NextMidnight(now, s.location)
	gen := s.gen

	s.next = next
	s.timer = s.clock.AfterFunc(next.Sub(now), func() { s.fire(gen) })
	metrics.NextResetTimestamp.Set(float64(next.Unix()))

	s.logger.Info("identity reset armed", slog.Time("next_reset", next))
}

func (s *Scheduler) fire(gen uint64) {
	s.fireMu.Lock()
	defer s.fireMu.Unlock()

	if !s.current(gen) {
		return
	}

	s.clear()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running && s.gen == gen {
		s.armLocked()
	}
}

func (s *Scheduler) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running && s.gen == gen
}

// clear runs one reset. Failures are logged and left for the next midnight.
func (s *Scheduler) clear() {
	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()

	removed, err := s.clearer.ClearIdentities(ctx)
	if err != nil {
		metrics.ResetsTotal.WithLabelValues(metrics.ResetFailure).Inc()
		s.logger.Error("identity reset failed", slog.String("error", err.Error()))
		return
	}

	metrics.ResetsTotal.WithLabelValues(metrics.ResetSuccess).Inc()
	metrics.IdentitiesClearedTotal.Add(float64(removed))
	s.logger.Info("identities cleared", slog.Int("removed", removed))
}
