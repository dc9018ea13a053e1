package dto

import (
	"time"

	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/appointment"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

// AppointmentView is the list/detail projection of an appointment. The
// confirmed flag is derived from status so it can never drift.
type AppointmentView struct {
	ID            uint   `json:"id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	FormattedTime string `json:"formatted_time"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	Confirmed     bool   `json:"confirmed"`

	PatientName     string `json:"patient_name"`
	PatientUsername string `json:"patient_username"`
	PatientFullName string `json:"patient_full_name"`

	DoctorName      string `json:"doctor_name"`
	DoctorSpecialty string `json:"doctor_specialty"`

	ConsultationStart *time.Time `json:"consultation_start,omitempty"`
	ConsultationEnd   *time.Time `json:"consultation_end,omitempty"`
	Diagnosis         string     `json:"diagnosis,omitempty"`
	Prescription      string     `json:"prescription,omitempty"`
	DoctorNotes       string     `json:"doctor_notes,omitempty"`
}

func NewAppointmentView(ap *models.Appointment) AppointmentView {
	view := AppointmentView{
		ID:            ap.ID,
		Date:          ap.Date,
		Time:          ap.Time,
		FormattedTime: domain.FormatTime(ap.Time),
		Reason:        ap.Reason,
		Status:        ap.Status,
		Confirmed:     domain.Confirmed(ap),

		PatientName:     ap.PatientName,
		PatientUsername: ap.Patient.Username,
		PatientFullName: ap.Patient.FullName,

		DoctorName:      ap.Doctor.Name,
		DoctorSpecialty: ap.Doctor.Specialty,

		ConsultationStart: ap.ConsultationStart,
		ConsultationEnd:   ap.ConsultationEnd,
		Diagnosis:         ap.Diagnosis,
		Prescription:      ap.Prescription,
		DoctorNotes:       ap.DoctorNotes,
	}

	if view.PatientName == "" {
		view.PatientName = ap.Patient.DisplayName()
	}
	return view
}

func NewAppointmentViews(aps []models.Appointment) []AppointmentView {
	views := make([]AppointmentView, 0, len(aps))
	for i := range aps {
		views = append(views, NewAppointmentView(&aps[i]))
	}
	return views
}
