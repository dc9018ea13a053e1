package appointment

import (
	"context"

	"github.com/clinicdesk/clinic-scheduler/internal/dates"
	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/identity"
)

type GetAvailability struct {
	repo      domain.Repository
	directory identity.Directory
}

func NewGetAvailability(
	repo domain.Repository,
	directory identity.Directory,
) *GetAvailability {
	return &GetAvailability{
		repo:      repo,
		directory: directory,
	}
}

// Execute returns the doctor's configured slot labels minus those already
// taken by a non-cancelled booking on the given date.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	doctorRef string,
	date string,
) ([]string, error) {

	if _, err := dates.ParseDate(date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	doctor, err := uc.directory.ResolveDoctor(ctx, doctorRef)
	if err != nil {
		return nil, err
	}

	taken, err := uc.repo.TakenSlots(ctx, doctor.ID, date)
	if err != nil {
		return nil, err
	}

	busy := make(map[string]bool, len(taken))
	for _, label := range taken {
		busy[label] = true
	}

	free := []string{}
	for _, label := range doctor.SlotLabels() {
		if !busy[label] {
			free = append(free, label)
		}
	}
	return free, nil
}
