// Package timeline maintains the kept/skipped partition of a single media
// recording as an ordered, non-overlapping sequence of labeled time ranges
package timeline

// Segment is a labeled half-open time range [Start, End) within a recording,
// measured in seconds. Included marks whether the range is kept in the
// final cut.
type Segment struct {
	ID       int     `json:"id"`
	Start    float64 `json:"start_time"`
	End      float64 `json:"end_time"`
	Included bool    `json:"included"`
}

// Duration returns the length of the segment in seconds. It is never
// negative.
func (s Segment) Duration() float64 {
	if s.End <= s.Start {
		return 0
	}

	return s.End - s.Start
}

// Valid reports whether the segment covers a non-empty range.
func (s Segment) Valid() bool {
	return s.Duration() > 0
}

// Contains reports whether t falls within the segment's half-open range.
func (s Segment) Contains(t float64) bool {
	return s.Start <= t && t < s.End
}

// clamp restricts negative times to zero so a segment can never extend
// before the start of the recording.
func (s Segment) clamp() Segment {
	if s.Start < 0 {
		s.Start = 0
	}

	if s.End < 0 {
		s.End = 0
	}

	return s
}
