package dates

import "time"

// Appointments carry naive local dates ("2006-01-02") and wall-clock slot
// labels ("15:04"). Both formats sort lexicographically, which the schedule
// views rely on.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Today returns the current local date in storage form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ValidSlotLabel reports whether s is a well-formed 24-hour "HH:MM" label.
func ValidSlotLabel(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil && len(s) == 5
}
