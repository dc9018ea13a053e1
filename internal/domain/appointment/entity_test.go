package appointment

import (
	"strings"
	"testing"
	"time"

	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

func pendingAppointment() *models.Appointment {
	return &models.Appointment{
		ID:       1,
		DoctorID: 1,
		Date:     "2030-01-01",
		Time:     "09:00",
		Status:   string(StatusPending),
	}
}

func TestConfirm(t *testing.T) {
	ap := pendingAppointment()

	if err := Confirm(ap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Errorf("status = %q, want Confirmed", ap.Status)
	}
	if !Confirmed(ap) {
		t.Error("confirmed flag should derive true after confirmation")
	}

	if err := Confirm(ap); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Errorf("second confirm: got %v, want invalid_state", err)
	}
}

func TestStartConsultation(t *testing.T) {
	ap := pendingAppointment()
	now := time.Now()

	if err := StartConsultation(ap, now); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("start on pending: got %v, want invalid_state", err)
	}
	if ap.ConsultationStart != nil || ap.Status != string(StatusPending) {
		t.Fatal("rejected start must not mutate the record")
	}

	if err := Confirm(ap); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := StartConsultation(ap, now); err != nil {
		t.Fatalf("start on confirmed: %v", err)
	}
	if ap.Status != string(StatusInProgress) {
		t.Errorf("status = %q, want In Progress", ap.Status)
	}
	if ap.ConsultationStart == nil || !ap.ConsultationStart.Equal(now) {
		t.Error("consultation start not recorded")
	}
}

func TestCompleteConsultation(t *testing.T) {
	ap := pendingAppointment()
	start := time.Now()

	if err := CompleteConsultation(ap, start, "flu", "rest", "notes"); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("complete without start: got %v, want invalid_state", err)
	}

	if err := Confirm(ap); err != nil {
		t.Fatal(err)
	}
	if err := StartConsultation(ap, start); err != nil {
		t.Fatal(err)
	}

	end := start.Add(30 * time.Minute)
	if err := CompleteConsultation(ap, end, "flu", "rest", "follow up in a week"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Errorf("status = %q, want Completed", ap.Status)
	}
	if ap.Diagnosis != "flu" || ap.Prescription != "rest" || ap.DoctorNotes != "follow up in a week" {
		t.Error("completion report fields not stored")
	}
	if ap.ConsultationEnd == nil || ap.ConsultationEnd.Before(*ap.ConsultationStart) {
		t.Error("consultation end must be set and not precede the start")
	}
}

func TestCompleteConsultationClampsEndToStart(t *testing.T) {
	ap := pendingAppointment()
	start := time.Now()

	if err := Confirm(ap); err != nil {
		t.Fatal(err)
	}
	if err := StartConsultation(ap, start); err != nil {
		t.Fatal(err)
	}

	// A clock that moved backwards must not produce end < start.
	if err := CompleteConsultation(ap, start.Add(-time.Minute), "", "", ""); err != nil {
		t.Fatal(err)
	}
	if ap.ConsultationEnd.Before(*ap.ConsultationStart) {
		t.Error("consultation end precedes start")
	}
}

func TestCompleteConsultationLengthCaps(t *testing.T) {
	ap := pendingAppointment()
	now := time.Now()

	if err := Confirm(ap); err != nil {
		t.Fatal(err)
	}
	if err := StartConsultation(ap, now); err != nil {
		t.Fatal(err)
	}

	long := strings.Repeat("x", MaxDiagnosisLen+1)
	if err := CompleteConsultation(ap, now, long, "", ""); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("oversized diagnosis: got %v, want validation", err)
	}
	if ap.Status != string(StatusInProgress) || ap.ConsultationEnd != nil {
		t.Error("rejected completion must not mutate the record")
	}

	longNotes := strings.Repeat("x", MaxNotesLen+1)
	if err := CompleteConsultation(ap, now, "", "", longNotes); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("oversized notes: got %v, want validation", err)
	}
}

func TestCancel(t *testing.T) {
	for _, from := range []Status{StatusPending, StatusConfirmed, StatusInProgress} {
		ap := pendingAppointment()
		ap.Status = string(from)

		if err := Cancel(ap); err != nil {
			t.Errorf("cancel from %q: %v", from, err)
		}
		if ap.Status != string(StatusCancelled) {
			t.Errorf("cancel from %q: status = %q", from, ap.Status)
		}
	}

	for _, from := range []Status{StatusCompleted, StatusCancelled} {
		ap := pendingAppointment()
		ap.Status = string(from)

		if err := Cancel(ap); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
			t.Errorf("cancel from %q: got %v, want invalid_state", from, err)
		}
		if ap.Status != string(from) {
			t.Errorf("rejected cancel mutated status to %q", ap.Status)
		}
	}
}
