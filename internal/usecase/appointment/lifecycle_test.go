package appointment

import (
	"context"
	"encoding/json"
	"testing"

	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
	"github.com/clinicdesk/clinic-scheduler/internal/notify"
)

func TestConsultationFlow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	ap := f.mustBook(BookInput{
		DoctorRef:  "ghouse",
		PatientRef: "jdoe",
		Date:       "2030-01-01",
		Time:       "09:00",
	})
	if ap.Status != string(domain.StatusPending) {
		t.Fatalf("status after booking = %q", ap.Status)
	}

	// Second booking for the same slot conflicts.
	if _, err := f.book(BookInput{DoctorRef: "ghouse", PatientRef: "jdoe", Date: "2030-01-01", Time: "09:00"}); !httperr.IsBusiness(err, httperr.CodeSlotConflict) {
		t.Fatalf("duplicate booking: got %v, want slot_conflict", err)
	}

	// Consultation cannot start before confirmation.
	if _, err := NewStartConsultation(f.store).Execute(ctx, ap.ID); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("start before confirm: got %v, want invalid_state", err)
	}

	ap, err := NewConfirm(f.store, f.notifier).Execute(ctx, ap.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if ap.Status != string(domain.StatusConfirmed) || !domain.Confirmed(ap) {
		t.Fatalf("after confirm: status=%q confirmed=%v", ap.Status, domain.Confirmed(ap))
	}

	ap, err = NewStartConsultation(f.store).Execute(ctx, ap.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if ap.Status != string(domain.StatusInProgress) || ap.ConsultationStart == nil {
		t.Fatalf("after start: status=%q start=%v", ap.Status, ap.ConsultationStart)
	}

	ap, err = NewCompleteConsultation(f.store).Execute(ctx, CompleteInput{
		ID:           ap.ID,
		Diagnosis:    "flu",
		Prescription: "rest",
		Notes:        "follow up in a week",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ap.Status != string(domain.StatusCompleted) {
		t.Fatalf("after complete: status=%q", ap.Status)
	}
	if ap.ConsultationEnd == nil || ap.ConsultationEnd.Before(*ap.ConsultationStart) {
		t.Fatal("consultation end missing or precedes start")
	}
	if ap.Diagnosis != "flu" || ap.Prescription != "rest" || ap.DoctorNotes != "follow up in a week" {
		t.Fatal("completion report not stored")
	}

	// The stored record reflects the full transition.
	stored, err := f.store.Get(ctx, ap.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != string(domain.StatusCompleted) || stored.Diagnosis != "flu" {
		t.Fatal("stored record out of sync")
	}

	// A completed appointment cannot be cancelled.
	if _, err := NewCancel(f.store, f.notifier).Execute(ctx, ap.ID); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("cancel completed: got %v, want invalid_state", err)
	}
}

func TestCompleteWithoutStart(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	ap := f.mustBook(BookInput{DoctorRef: "ghouse", PatientRef: "jdoe", Date: "2030-01-01", Time: "09:00"})

	if _, err := NewConfirm(f.store, f.notifier).Execute(ctx, ap.ID); err != nil {
		t.Fatal(err)
	}

	_, err := NewCompleteConsultation(f.store).Execute(ctx, CompleteInput{ID: ap.ID, Diagnosis: "flu"})
	if !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("complete without start: got %v, want invalid_state", err)
	}
}

func TestLifecycleUnknownAppointment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := NewConfirm(f.store, f.notifier).Execute(ctx, 999); !httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
		t.Errorf("confirm: got %v, want appointment_not_found", err)
	}
	if _, err := NewCancel(f.store, f.notifier).Execute(ctx, 999); !httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
		t.Errorf("cancel: got %v, want appointment_not_found", err)
	}
	if _, err := NewStartConsultation(f.store).Execute(ctx, 999); !httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
		t.Errorf("start: got %v, want appointment_not_found", err)
	}
	if _, err := NewGetDetails(f.store).Execute(ctx, 999); !httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
		t.Errorf("details: got %v, want appointment_not_found", err)
	}
}

func TestUpdateAfterExternalDeletion(t *testing.T) {
	f := newFixture()

	// A record that never existed in the store stands in for one deleted
	// between read and write.
	ghost := &models.Appointment{ID: 42, Status: string(domain.StatusPending)}
	if err := f.store.Update(context.Background(), ghost); !httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
		t.Fatalf("got %v, want appointment_not_found", err)
	}
}

func TestLifecycleNotifications(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	ap := f.mustBook(BookInput{DoctorRef: "ghouse", PatientRef: "jdoe", Date: "2030-01-01", Time: "09:00"})

	if _, err := NewConfirm(f.store, f.notifier).Execute(ctx, ap.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStartConsultation(f.store).Execute(ctx, ap.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := NewCompleteConsultation(f.store).Execute(ctx, CompleteInput{ID: ap.ID}); err != nil {
		t.Fatal(err)
	}

	other := f.mustBook(BookInput{DoctorRef: "ghouse", PatientRef: "jdoe", Date: "2030-01-02", Time: "09:00"})
	if _, err := NewCancel(f.store, f.notifier).Execute(ctx, other.ID); err != nil {
		t.Fatal(err)
	}

	f.notifier.Close()

	// book, confirm, book, cancel publish; start/complete do not.
	if got := f.transport.count(); got != 4 {
		t.Fatalf("published %d events, want 4", got)
	}

	var confirmEv notify.Event
	if err := json.Unmarshal(f.transport.payloads[1], &confirmEv); err != nil {
		t.Fatal(err)
	}
	if confirmEv.ID != ap.ID || !confirmEv.Confirmed {
		t.Errorf("confirm event = %+v, want confirmed=true", confirmEv)
	}
}
