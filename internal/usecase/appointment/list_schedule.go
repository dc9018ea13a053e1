package appointment

import (
	"context"

	"github.com/clinicdesk/clinic-scheduler/internal/dates"
	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/identity"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

// ======================================================
// LIST FOR PATIENT
// ======================================================

type ListForPatient struct {
	repo      domain.Repository
	directory identity.Directory
}

func NewListForPatient(
	repo domain.Repository,
	directory identity.Directory,
) *ListForPatient {
	return &ListForPatient{
		repo:      repo,
		directory: directory,
	}
}

// Execute returns the patient's appointments dated today or later. The
// primary lookup keys on the denormalized patient display name; when that
// finds nothing, it falls back to resolving the reference as a username.
// The fallback replaces the primary result, so nothing is counted twice.
func (uc *ListForPatient) Execute(
	ctx context.Context,
	patientRef string,
) ([]models.Appointment, error) {

	asOf := dates.Today()

	aps, err := uc.repo.ListByPatientName(ctx, patientRef)
	if err != nil {
		return nil, err
	}

	if len(aps) == 0 {
		patient, err := uc.directory.ResolvePatient(ctx, patientRef)
		if err != nil {
			if httperr.IsNotFound(err) {
				return []models.Appointment{}, nil
			}
			return nil, err
		}
		if aps, err = uc.repo.ListByPatientID(ctx, patient.ID); err != nil {
			return nil, err
		}
	}

	return futureDated(aps, asOf), nil
}

// ======================================================
// LIST FOR DOCTOR
// ======================================================

type ListForDoctor struct {
	repo      domain.Repository
	directory identity.Directory
}

func NewListForDoctor(
	repo domain.Repository,
	directory identity.Directory,
) *ListForDoctor {
	return &ListForDoctor{
		repo:      repo,
		directory: directory,
	}
}

func (uc *ListForDoctor) Execute(
	ctx context.Context,
	doctorRef string,
) ([]models.Appointment, error) {

	asOf := dates.Today()

	doctor, err := uc.directory.ResolveDoctor(ctx, doctorRef)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListByDoctorUsername(ctx, doctor.Username)
	if err != nil {
		return nil, err
	}

	return futureDated(aps, asOf), nil
}

// ======================================================
// LIST ALL (administrative, unfiltered)
// ======================================================

type ListAll struct {
	repo domain.Repository
}

func NewListAll(repo domain.Repository) *ListAll {
	return &ListAll{repo: repo}
}

func (uc *ListAll) Execute(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListAll(ctx)
}

// ======================================================
// helpers
// ======================================================

// futureDated keeps appointments dated asOf or later. Dates are stored in
// "2006-01-02" form, so string comparison orders them correctly; the asOf
// snapshot is taken once per call.
func futureDated(aps []models.Appointment, asOf string) []models.Appointment {
	out := make([]models.Appointment, 0, len(aps))
	for _, ap := range aps {
		if ap.Date >= asOf {
			out = append(out, ap)
		}
	}
	return out
}
