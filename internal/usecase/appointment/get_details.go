package appointment

import (
	"context"

	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicdesk/clinic-scheduler/internal/dto"
)

type GetDetails struct {
	repo domain.Repository
}

func NewGetDetails(repo domain.Repository) *GetDetails {
	return &GetDetails{repo: repo}
}

func (uc *GetDetails) Execute(
	ctx context.Context,
	id uint,
) (*dto.AppointmentView, error) {

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	view := dto.NewAppointmentView(ap)
	return &view, nil
}
