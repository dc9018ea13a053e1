package appointment

import (
	"context"
	"sync"

	infraRepo "github.com/clinicdesk/clinic-scheduler/internal/infra/repository"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
	"github.com/clinicdesk/clinic-scheduler/internal/notify"
)

// recordingTransport captures published payloads for assertions.
type recordingTransport struct {
	mu       sync.Mutex
	topics   []string
	payloads [][]byte
}

func (t *recordingTransport) Publish(_ context.Context, topic string, payload []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.topics = append(t.topics, topic)
	t.payloads = append(t.payloads, payload)
	return nil
}

func (t *recordingTransport) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.payloads)
}

// fixture wires the use cases over the in-memory store with one seeded
// doctor and one seeded patient.
type fixture struct {
	store     *infraRepo.MemoryStore
	transport *recordingTransport
	notifier  *notify.Dispatcher
	doctor    models.Doctor
	patient   models.Patient
}

func newFixture() *fixture {
	store := infraRepo.NewMemoryStore()
	transport := &recordingTransport{}

	return &fixture{
		store:     store,
		transport: transport,
		notifier:  notify.NewDispatcher(transport, notify.DefaultTopic),
		doctor: store.AddDoctor(models.Doctor{
			Name:      "Dr. Gregory House",
			Specialty: "Diagnostics",
			Username:  "ghouse",
		}),
		patient: store.AddPatient(models.Patient{
			Username: "jdoe",
			FullName: "John Doe",
		}),
	}
}

func (f *fixture) book(in BookInput) (*models.Appointment, error) {
	return NewBook(f.store, f.store, f.notifier).Execute(context.Background(), in)
}

func (f *fixture) mustBook(in BookInput) *models.Appointment {
	ap, err := f.book(in)
	if err != nil {
		panic(err)
	}
	return ap
}
