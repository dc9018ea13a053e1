package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	DoctorID uint   `json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	// Calendar date of the slot, naive local date, "2006-01-02".
	Date string `gorm:"size:10;index" json:"date"`

	// Wall-clock slot label, 24-hour "HH:MM". (doctor, date, time) is the
	// booking key; a partial unique index over it excludes cancelled rows.
	Time string `gorm:"size:5" json:"time"`

	// Denormalized patient display name; the patient schedule lookup keys
	// on it first and falls back to the Patient association.
	PatientName string `gorm:"size:100;index" json:"patient_name"`

	Reason string `gorm:"size:255" json:"reason"`

	Status string `gorm:"size:20;default:'Pending'" json:"status"`

	ConsultationStart *time.Time `json:"consultation_start"`
	ConsultationEnd   *time.Time `json:"consultation_end"`

	Diagnosis    string `gorm:"size:2000" json:"diagnosis,omitempty"`
	Prescription string `gorm:"size:2000" json:"prescription,omitempty"`
	DoctorNotes  string `gorm:"size:1000" json:"doctor_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
