package timeline

import "testing"

func TestSegmentDuration(t *testing.T) {
	cases := []struct {
		name string
		seg  Segment
		want float64
	}{
		{"normal", Segment{Start: 2, End: 5.5}, 3.5},
		{"empty", Segment{Start: 4, End: 4}, 0},
		{"inverted clamps to zero", Segment{Start: 6, End: 2}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.seg.Duration(); got != tc.want {
				t.Errorf("Duration() = %v, want %v", got, tc.want)
			}

			if got, want := tc.seg.Valid(), tc.want > 0; got != want {
				t.Errorf("Valid() = %v, want %v", got, want)
			}
		})
	}
}

func TestSegmentContains(t *testing.T) {
	s := Segment{Start: 2, End: 5}

	cases := []struct {
		at   float64
		want bool
	}{
		{1.9, false},
		{2, true},
		{3.5, true},
		{5, false}, // end is exclusive
		{5.1, false},
	}

	for _, tc := range cases {
		if got := s.Contains(tc.at); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.at, got, tc.want)
		}
	}
}
