package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EscalationFunc is invoked when an armed escalation timer fires. The
// expected level is the level the timer was armed at; the store rejects the
// advance if the alert moved on in the meantime.
type EscalationFunc func(ctx context.Context, alertID uuid.UUID, expectedLevel int)

// EscalationScheduler owns one goroutine per armed alert timer. Cancel is
// idempotent and safe to call for alerts that were never scheduled; the
// losing side of an acknowledge/timer race is resolved at the store, not
// here.
type EscalationScheduler struct {
	mu     sync.Mutex
	timers map[uuid.UUID]chan struct{}
	fire   EscalationFunc
	logger *slog.Logger
	wg     sync.WaitGroup
	closed bool
}

// NewEscalationScheduler creates an unbound scheduler. Bind must be called
// before the first Schedule.
func NewEscalationScheduler(logger *slog.Logger) *EscalationScheduler {
	return &EscalationScheduler{
		timers: make(map[uuid.UUID]chan struct{}),
		logger: logger,
	}
}

// Bind sets the function invoked when a timer fires. Separate from the
// constructor because the lifecycle service and the scheduler reference each
// other.
func (s *EscalationScheduler) Bind(fire EscalationFunc) {
	s.fire = fire
}

// Schedule arms a timer for the alert. An existing timer for the same alert
// is replaced.
func (s *EscalationScheduler) Schedule(alertID uuid.UUID, expectedLevel int, delay time.Duration) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}

	if cancel, ok := s.timers[alertID]; ok {
		close(cancel)
	}

	cancel := make(chan struct{})
	s.timers[alertID] = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			s.remove(alertID, cancel)
			s.fire(context.Background(), alertID, expectedLevel)
		case <-cancel:
		}
	}()

	s.logger.Debug("escalation timer armed",
		slog.String("alert_id", alertID.String()),
		slog.Int("expected_level", expectedLevel),
		slog.Duration("delay", delay),
	)
}

// Cancel stops the armed timer for the alert, if any.
func (s *EscalationScheduler) Cancel(alertID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cancel, ok := s.timers[alertID]; ok {
		close(cancel)
		delete(s.timers, alertID)
	}
}

// Shutdown cancels all timers and waits for in-flight firings to finish.
func (s *EscalationScheduler) Shutdown() {
	s.mu.Lock()
	s.closed = true
	for id, cancel := range s.timers {
		close(cancel)
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// remove clears the timer entry unless it was already replaced or cancelled.
func (s *EscalationScheduler) remove(alertID uuid.UUID, cancel chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.timers[alertID]; ok && current == cancel {
		delete(s.timers, alertID)
	}
}
