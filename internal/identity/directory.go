package identity

import (
	"context"

	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

// Directory resolves doctor and patient references for the scheduling core.
// Identity storage is a collaborator concern; the core only needs lookups.
type Directory interface {
	// ResolveDoctor accepts a numeric id or a username.
	ResolveDoctor(ctx context.Context, ref string) (*models.Doctor, error)

	// ResolvePatient accepts a username.
	ResolvePatient(ctx context.Context, ref string) (*models.Patient, error)
}
