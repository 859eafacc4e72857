// Package timeutil provides helpers for converting between seconds and
// human-readable playhead timestamps.
package timeutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

var errInvalidTimestamp = errors.New(
	"timestamps must look like SS, SS.s, MM:SS, or H:MM:SS",
)

// Round rounds a time value in seconds to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// FormatSeconds renders a position in seconds as MM:SS, or H:MM:SS once it
// passes the hour mark. Negative values are treated as zero.
func FormatSeconds(t float64) string {
	total := Round(t)
	if total < 0 {
		total = 0
	}

	hours := total / secondsInAnHour
	minutes := (total % secondsInAnHour) / secondsInAMinute
	seconds := total % secondsInAMinute

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}

	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// ParseTimestamp converts a playhead timestamp into seconds. It accepts
// plain seconds ("83", "83.5"), MM:SS ("4:20"), and H:MM:SS ("1:02:03").
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errInvalidTimestamp
	}

	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return 0, errInvalidTimestamp
	}

	var total float64

	for _, part := range parts {
		n, err := strconv.ParseFloat(part, 64)
		if err != nil || n < 0 {
			return 0, errInvalidTimestamp
		}

		total = total*secondsInAMinute + n
	}

	return total, nil
}
