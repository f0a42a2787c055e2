package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/snapshot/storefront/internal/core/domain"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []domain.ContactMessage
	fail bool
	done chan struct{}
}

func newRecordingMailer(expect int) *recordingMailer {
	return &recordingMailer{done: make(chan struct{}, expect)}
}

func (m *recordingMailer) SendContactNotification(_ context.Context, msg domain.ContactMessage) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	m.done <- struct{}{}
	if m.fail {
		return errors.New("smtp down")
	}
	return nil
}

func waitFor(t *testing.T, ch <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d of %d deliveries", i, n)
		}
	}
}

func TestDispatcher_DeliversInOrderPerSender(t *testing.T) {
	mailer := newRecordingMailer(6)
	d := NewDispatcher(3, mailer, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	subjects := []string{"1", "2", "3"}
	for _, s := range subjects {
		d.Enqueue(domain.ContactMessage{Email: "alice@example.com", Subject: s})
		d.Enqueue(domain.ContactMessage{Email: "bob@example.com", Subject: s})
	}
	waitFor(t, mailer.done, 6)
	cancel()
	d.Wait()

	var alice []string
	for _, m := range mailer.sent {
		if m.Email == "alice@example.com" {
			alice = append(alice, m.Subject)
		}
	}
	if len(alice) != 3 || alice[0] != "1" || alice[2] != "3" {
		t.Fatalf("expected alice's messages in order, got %v", alice)
	}
}

func TestDispatcher_FailureDoesNotStopWorker(t *testing.T) {
	mailer := newRecordingMailer(2)
	mailer.fail = true
	d := NewDispatcher(1, mailer, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.ContactMessage{Email: "a@x.io"})
	d.Enqueue(domain.ContactMessage{Email: "a@x.io"})
	waitFor(t, mailer.done, 2)
}

func TestDispatcher_EnqueueDoesNotBlockWhenFull(t *testing.T) {
	d := NewDispatcher(1, newRecordingMailer(0), zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Enqueue(domain.ContactMessage{Email: "a@x.io"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Enqueue blocked on a full queue")
	}
}

func TestDispatcher_ShardIndexStable(t *testing.T) {
	d := NewDispatcher(8, nil, zerolog.Nop())
	first := d.shardIndex("alice@example.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("alice@example.com") != first {
			t.Fatalf("shard index must be deterministic")
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}
