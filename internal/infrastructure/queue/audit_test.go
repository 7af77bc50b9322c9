package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

type captureRecorder struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *captureRecorder) Record(_ context.Context, event domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *captureRecorder) snapshot() []domain.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditEvent, len(r.events))
	copy(out, r.events)
	return out
}

func waitFor(t *testing.T, want int, rec *captureRecorder) []domain.AuditEvent {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		events := rec.snapshot()
		if len(events) >= want {
			return events
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d events, got %d", want, len(events))
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestAuditDispatcher_PersistsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recorder := &captureRecorder{}
	d := NewAuditDispatcher(2, recorder, zerolog.Nop())
	d.Start(ctx)

	d.Record(domain.AuditEvent{Subject: "alice", Action: "login", Decision: domain.AuditAllowed})
	d.Record(domain.AuditEvent{Subject: "bob", Action: "login", Decision: domain.AuditDenied})

	events := waitFor(t, 2, recorder)
	subjects := map[string]bool{}
	for _, e := range events {
		subjects[e.Subject] = true
	}
	if !subjects["alice"] || !subjects["bob"] {
		t.Fatalf("missing events: %+v", events)
	}
}

func TestAuditDispatcher_PerSubjectOrdering(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recorder := &captureRecorder{}
	d := NewAuditDispatcher(4, recorder, zerolog.Nop())
	d.Start(ctx)

	const n = 20
	for i := 0; i < n; i++ {
		decision := domain.AuditAllowed
		if i%2 == 1 {
			decision = domain.AuditDenied
		}
		d.Record(domain.AuditEvent{
			Subject:   "alice",
			Action:    "login",
			Decision:  decision,
			Timestamp: time.Unix(int64(i), 0),
		})
	}

	events := waitFor(t, n, recorder)
	for i, e := range events {
		if e.Timestamp.Unix() != int64(i) {
			t.Fatalf("events out of order at %d: %+v", i, e)
		}
	}
}

func TestAuditDispatcher_DropsWhenFull(t *testing.T) {
	// Never started, so buffers fill and Record must not block.
	recorder := &captureRecorder{}
	d := NewAuditDispatcher(1, recorder, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Record(domain.AuditEvent{Subject: "alice", Action: "login"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Record blocked on a full buffer")
	}
}
