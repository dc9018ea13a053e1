package appointment

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime converts a 24-hour "HH:MM" slot label to 12-hour display form
// ("13:30" -> "1:30 PM"). Labels that already carry an AM/PM suffix pass
// through unchanged, and anything unparseable is returned as-is rather than
// failing a read.
func FormatTime(label string) string {
	if label == "" {
		return label
	}

	upper := strings.ToUpper(label)
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		return label
	}

	parts := strings.Split(label, ":")
	if len(parts) != 2 {
		return label
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return label
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return label
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return label
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	if hour == 0 {
		hour = 12
	}
	if hour > 12 {
		hour -= 12
	}

	return fmt.Sprintf("%d:%02d %s", hour, minute, ampm)
}
