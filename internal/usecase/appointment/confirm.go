package appointment

import (
	"context"

	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
	"github.com/clinicdesk/clinic-scheduler/internal/notify"
)

type Confirm struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
}

func NewConfirm(
	repo domain.Repository,
	notifier *notify.Dispatcher,
) *Confirm {
	return &Confirm{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *Confirm) Execute(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Confirm(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		ID:        ap.ID,
		Doctor:    ap.Doctor.Name,
		Date:      ap.Date,
		Time:      ap.Time,
		Confirmed: domain.Confirmed(ap),
	})

	return ap, nil
}
