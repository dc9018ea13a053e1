package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"
)

type captureTransport struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (t *captureTransport) Publish(_ context.Context, _ string, payload []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return t.err
	}
	t.payloads = append(t.payloads, payload)
	return nil
}

func (t *captureTransport) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.payloads)
}

// blockingTransport parks every publish until released.
type blockingTransport struct {
	release chan struct{}
}

func (t *blockingTransport) Publish(context.Context, string, []byte) error {
	<-t.release
	return nil
}

func TestDispatchDeliversPayload(t *testing.T) {
	transport := &captureTransport{}
	d := NewDispatcher(transport, "appointments")

	d.Dispatch(Event{ID: 7, Doctor: "Dr. Strange", Date: "2030-01-01", Time: "09:00", Confirmed: true})
	d.Close()

	if transport.count() != 1 {
		t.Fatalf("delivered %d events, want 1", transport.count())
	}

	var ev Event
	if err := json.Unmarshal(transport.payloads[0], &ev); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if ev.ID != 7 || ev.Doctor != "Dr. Strange" || !ev.Confirmed {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestDispatchSwallowsTransportFailure(t *testing.T) {
	transport := &captureTransport{err: errors.New("broker down")}
	d := NewDispatcher(transport, "")

	// Must neither panic nor block; the failure is logged and dropped.
	d.Dispatch(Event{ID: 1})
	d.Dispatch(Event{ID: 2})
	d.Close()
}

func TestDispatchNeverBlocksCaller(t *testing.T) {
	transport := &blockingTransport{release: make(chan struct{})}
	d := NewDispatcher(transport, "appointments")

	done := make(chan struct{})
	go func() {
		// Overflow the queue while the worker is parked on the transport.
		for i := 0; i < 500; i++ {
			d.Dispatch(Event{ID: uint(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on a stuck transport")
	}

	close(transport.release)
	d.Close()
}
