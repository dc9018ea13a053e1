package models

import (
	"strings"
	"time"
)

const DefaultSlots = "09:00,10:00,11:00,14:00,15:00"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Username  string `gorm:"size:100;uniqueIndex" json:"username"`

	// Comma-separated bookable slot labels, e.g. "09:00,09:30,10:00".
	AvailableSlots string `gorm:"size:255" json:"available_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SlotLabels splits AvailableSlots, falling back to the clinic default
// when a doctor has no configured hours.
func (d *Doctor) SlotLabels() []string {
	raw := d.AvailableSlots
	if raw == "" {
		raw = DefaultSlots
	}
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
