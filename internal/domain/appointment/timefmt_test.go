package appointment

import "testing"

func TestFormatTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"00:05", "12:05 AM"},
		{"09:00", "9:00 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"13:30", "1:30 PM"},
		{"23:45", "11:45 PM"},
		{"9:05 AM", "9:05 AM"},
		{"2:30 pm", "2:30 pm"},
		{"garbage", "garbage"},
		{"25:00", "25:00"},
		{"10:61", "10:61"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := FormatTime(tc.in); got != tc.want {
			t.Errorf("FormatTime(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
