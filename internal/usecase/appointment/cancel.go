package appointment

import (
	"context"

	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
	"github.com/clinicdesk/clinic-scheduler/internal/notify"
)

type Cancel struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
}

func NewCancel(
	repo domain.Repository,
	notifier *notify.Dispatcher,
) *Cancel {
	return &Cancel{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	// Cancelling frees the slot, so subscribers hear about it.
	uc.notifier.Dispatch(notify.Event{
		ID:        ap.ID,
		Doctor:    ap.Doctor.Name,
		Date:      ap.Date,
		Time:      ap.Time,
		Confirmed: domain.Confirmed(ap),
	})

	return ap, nil
}
