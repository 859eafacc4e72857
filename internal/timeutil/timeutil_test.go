package timeutil

import "testing"

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "00:00"},
		{59.4, "00:59"},
		{59.6, "01:00"},
		{260, "04:20"},
		{3723, "1:02:03"},
		{-5, "00:00"},
	}

	for _, tc := range cases {
		if got := FormatSeconds(tc.in); got != tc.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"83", 83, false},
		{"83.5", 83.5, false},
		{"4:20", 260, false},
		{"1:02:03", 3723, false},
		{" 12 ", 12, false},
		{"", 0, true},
		{"1:2:3:4", 0, true},
		{"abc", 0, true},
		{"-5", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseTimestamp(tc.in)

		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimestamp(%q) expected an error", tc.in)
			}

			continue
		}

		if err != nil {
			t.Errorf("ParseTimestamp(%q) unexpected error: %v", tc.in, err)
			continue
		}

		if got != tc.want {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
