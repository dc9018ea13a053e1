package repository

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/identity"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

type IdentityGormDirectory struct {
	db *gorm.DB
}

func NewIdentityGormDirectory(db *gorm.DB) *IdentityGormDirectory {
	return &IdentityGormDirectory{db: db}
}

// ResolveDoctor tries the reference as a numeric id first, then as a
// username.
func (d *IdentityGormDirectory) ResolveDoctor(
	ctx context.Context,
	ref string,
) (*models.Doctor, error) {

	var doctor models.Doctor

	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		err := d.db.WithContext(ctx).First(&doctor, uint(id)).Error
		if err == nil {
			return &doctor, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := d.db.WithContext(ctx).
		Where("username = ?", ref).
		First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeDoctorNotFound)
		}
		return nil, err
	}
	return &doctor, nil
}

func (d *IdentityGormDirectory) ResolvePatient(
	ctx context.Context,
	ref string,
) (*models.Patient, error) {

	var patient models.Patient
	if err := d.db.WithContext(ctx).
		Where("username = ?", ref).
		First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodePatientNotFound)
		}
		return nil, err
	}
	return &patient, nil
}

// Compile-time check
var _ identity.Directory = (*IdentityGormDirectory)(nil)
