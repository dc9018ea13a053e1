package appointment

import (
	"context"
	"time"

	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

type StartConsultation struct {
	repo domain.Repository
}

func NewStartConsultation(repo domain.Repository) *StartConsultation {
	return &StartConsultation{repo: repo}
}

// Execute moves a confirmed appointment into the consultation room. It does
// not notify: starting only changes consultation-detail reads, not the
// published schedule.
func (uc *StartConsultation) Execute(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.StartConsultation(ap, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
