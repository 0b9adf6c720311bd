package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type firing struct {
	alertID       uuid.UUID
	expectedLevel int
}

func newTestScheduler(t *testing.T) (*EscalationScheduler, chan firing) {
	t.Helper()

	scheduler := NewEscalationScheduler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	fired := make(chan firing, 8)
	scheduler.Bind(func(_ context.Context, alertID uuid.UUID, expectedLevel int) {
		fired <- firing{alertID: alertID, expectedLevel: expectedLevel}
	})

	t.Cleanup(scheduler.Shutdown)

	return scheduler, fired
}

func (s *EscalationScheduler) armed() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.timers)
}

func TestEscalationScheduler_FiresAfterDelay(t *testing.T) {
	scheduler, fired := newTestScheduler(t)

	alertID := uuid.New()
	scheduler.Schedule(alertID, 1, 10*time.Millisecond)

	select {
	case f := <-fired:
		assert.Equal(t, alertID, f.alertID)
		assert.Equal(t, 1, f.expectedLevel)
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}

	assert.Equal(t, 0, scheduler.armed(), "a fired timer must remove itself")
}

func TestEscalationScheduler_CancelPreventsFiring(t *testing.T) {
	scheduler, fired := newTestScheduler(t)

	alertID := uuid.New()
	scheduler.Schedule(alertID, 0, 30*time.Millisecond)
	scheduler.Cancel(alertID)

	select {
	case <-fired:
		t.Fatal("cancelled timer fired")
	case <-time.After(150 * time.Millisecond):
	}

	assert.Equal(t, 0, scheduler.armed())
}

func TestEscalationScheduler_CancelUnknownAlertIsNoOp(t *testing.T) {
	scheduler, _ := newTestScheduler(t)

	scheduler.Cancel(uuid.New())
	assert.Equal(t, 0, scheduler.armed())
}

func TestEscalationScheduler_RescheduleReplacesTimer(t *testing.T) {
	scheduler, fired := newTestScheduler(t)

	alertID := uuid.New()
	scheduler.Schedule(alertID, 0, time.Hour)
	scheduler.Schedule(alertID, 1, 10*time.Millisecond)

	select {
	case f := <-fired:
		assert.Equal(t, 1, f.expectedLevel, "the replacement timer must fire, not the original")
	case <-time.After(2 * time.Second):
		t.Fatal("replacement timer did not fire")
	}

	// The replaced timer was cancelled; nothing else may fire.
	select {
	case f := <-fired:
		t.Fatalf("unexpected second firing at level %d", f.expectedLevel)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEscalationScheduler_ShutdownStopsAll(t *testing.T) {
	scheduler, fired := newTestScheduler(t)

	scheduler.Schedule(uuid.New(), 0, time.Hour)
	scheduler.Schedule(uuid.New(), 0, time.Hour)
	require.Equal(t, 2, scheduler.armed())

	scheduler.Shutdown()
	assert.Equal(t, 0, scheduler.armed())

	// Scheduling after shutdown is ignored.
	scheduler.Schedule(uuid.New(), 0, 5*time.Millisecond)
	assert.Equal(t, 0, scheduler.armed())

	select {
	case <-fired:
		t.Fatal("timer fired after shutdown")
	case <-time.After(50 * time.Millisecond):
	}
}
