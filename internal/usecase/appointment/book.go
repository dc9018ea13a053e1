package appointment

import (
	"context"

	"github.com/clinicdesk/clinic-scheduler/internal/dates"
	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/identity"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
	"github.com/clinicdesk/clinic-scheduler/internal/notify"
)

const defaultReason = "General Consultation"

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	DoctorRef  string
	PatientRef string
	Date       string
	Time       string
	Reason     string
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo      domain.Repository
	directory identity.Directory
	notifier  *notify.Dispatcher
}

func NewBook(
	repo domain.Repository,
	directory identity.Directory,
	notifier *notify.Dispatcher,
) *Book {
	return &Book{
		repo:      repo,
		directory: directory,
		notifier:  notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	if in.DoctorRef == "" || in.PatientRef == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}
	if _, err := dates.ParseDate(in.Date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}
	if !dates.ValidSlotLabel(in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	doctor, err := uc.directory.ResolveDoctor(ctx, in.DoctorRef)
	if err != nil {
		return nil, err
	}
	patient, err := uc.directory.ResolvePatient(ctx, in.PatientRef)
	if err != nil {
		return nil, err
	}

	// Fast-path slot check. The store's live-slot uniqueness guarantee is
	// what holds under concurrent bookings; this only gives a cheap answer
	// before touching identity or building the record.
	taken, err := uc.repo.SlotTaken(ctx, doctor.ID, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	reason := in.Reason
	if reason == "" {
		reason = defaultReason
	}

	ap := &models.Appointment{
		DoctorID:    doctor.ID,
		PatientID:   patient.ID,
		PatientName: patient.DisplayName(),
		Date:        in.Date,
		Time:        in.Time,
		Reason:      reason,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		ID:        ap.ID,
		Doctor:    doctor.Name,
		Date:      ap.Date,
		Time:      ap.Time,
		Confirmed: domain.Confirmed(ap),
	})

	return ap, nil
}
