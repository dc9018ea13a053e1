package appointment

import (
	"context"
	"time"

	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

type CompleteInput struct {
	ID           uint
	Diagnosis    string
	Prescription string
	Notes        string
}

type CompleteConsultation struct {
	repo domain.Repository
}

func NewCompleteConsultation(repo domain.Repository) *CompleteConsultation {
	return &CompleteConsultation{repo: repo}
}

func (uc *CompleteConsultation) Execute(
	ctx context.Context,
	in CompleteInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.CompleteConsultation(
		ap,
		time.Now(),
		in.Diagnosis,
		in.Prescription,
		in.Notes,
	); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
