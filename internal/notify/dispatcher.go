package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTopic is the single logical channel schedule changes broadcast on.
const DefaultTopic = "appointments"

// Event is the payload subscribers receive on every booking, confirmation
// and cancellation.
type Event struct {
	ID        uint   `json:"id"`
	Doctor    string `json:"doctor"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Confirmed bool   `json:"confirmed"`
}

// Transport delivers a serialized event to a named topic. Delivery is
// at-most-once; implementations must not retry forever.
type Transport interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// Dispatcher fans events out through the transport from a background worker.
// Dispatch never blocks the mutating request and transport failures are
// logged and discarded, so a dead broker cannot fail or roll back a write.
type Dispatcher struct {
	transport Transport
	topic     string
	queue     chan Event
	done      chan struct{}
}

func NewDispatcher(transport Transport, topic string) *Dispatcher {
	if topic == "" {
		topic = DefaultTopic
	}
	d := &Dispatcher{
		transport: transport,
		topic:     topic,
		queue:     make(chan Event, 100),
		done:      make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		payload, err := json.Marshal(ev)
		if err != nil {
			log.Warn().Err(err).Uint("appointment_id", ev.ID).Msg("notify: marshal failed")
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.transport.Publish(ctx, d.topic, payload); err != nil {
			log.Warn().Err(err).Uint("appointment_id", ev.ID).Msg("notify: publish failed")
		}
		cancel()
	}
}

// Dispatch enqueues an event, dropping it when the queue is full.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Warn().Uint("appointment_id", ev.ID).Msg("notify: queue full, dropping event")
	}
}

// Close stops the worker after draining queued events.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
