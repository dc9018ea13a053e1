package appointment

import (
	"time"

	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

// Field length caps for the completion report.
const (
	MaxDiagnosisLen    = 2000
	MaxPrescriptionLen = 2000
	MaxNotesLen        = 1000
)

// ===============================
// Domain Actions
// ===============================
//
// Each action validates the transition, then mutates the record in full or
// not at all. Persistence is the caller's job.

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func StartConsultation(ap *models.Appointment, now time.Time) error {
	if err := CanStart(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusInProgress)
	ap.ConsultationStart = &now
	return nil
}

func CompleteConsultation(ap *models.Appointment, now time.Time, diagnosis, prescription, notes string) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	if ap.ConsultationStart == nil {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	if len(diagnosis) > MaxDiagnosisLen || len(prescription) > MaxPrescriptionLen || len(notes) > MaxNotesLen {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	if now.Before(*ap.ConsultationStart) {
		now = *ap.ConsultationStart
	}

	ap.Status = string(StatusCompleted)
	ap.ConsultationEnd = &now
	ap.Diagnosis = diagnosis
	ap.Prescription = prescription
	ap.DoctorNotes = notes
	return nil
}

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	return nil
}

// Confirmed exposes the derived confirmation flag for a record.
func Confirmed(ap *models.Appointment) bool {
	return Status(ap.Status).Confirmed()
}
