package appointment

import (
	"context"

	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

// Repository is the durable appointment store. Implementations translate
// storage-level failures into business errors where a stable code exists
// (unknown id -> appointment_not_found, duplicate live slot -> slot_conflict).
type Repository interface {
	// -------- Create / read / write --------
	Create(ctx context.Context, ap *models.Appointment) error

	Get(ctx context.Context, id uint) (*models.Appointment, error)

	// Update replaces the full record; callers read-modify-write. Fails with
	// appointment_not_found when the row vanished between read and write.
	Update(ctx context.Context, ap *models.Appointment) error

	// -------- Listings --------
	ListAll(ctx context.Context) ([]models.Appointment, error)

	ListByDoctorUsername(ctx context.Context, username string) ([]models.Appointment, error)

	ListByPatientName(ctx context.Context, patientName string) ([]models.Appointment, error)

	ListByPatientID(ctx context.Context, patientID uint) ([]models.Appointment, error)

	// -------- Slot registry --------

	// SlotTaken reports whether a non-cancelled appointment already occupies
	// (doctor, date, time).
	SlotTaken(ctx context.Context, doctorID uint, date, timeLabel string) (bool, error)

	// TakenSlots returns the time labels of all non-cancelled appointments
	// for the doctor on the given date.
	TakenSlots(ctx context.Context, doctorID uint, date string) ([]string, error)
}
