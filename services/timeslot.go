package services

import (
	"strings"
	"time"

	"github.com/yeremiapane/fausse-reservations/failure"
)

// ErrInvalidTimeSlot is returned for a time_slot that is not ISO-8601.
var ErrInvalidTimeSlot = failure.BadRequestFromString("Invalid time_slot format, expected ISO-8601")

// Naive layouts (no offset) are read as UTC.
var timeSlotLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// ParseTimeSlot accepts RFC 3339 ("Z" or an offset) and naive
// date-times. The result is UTC, cut to microseconds: the time_slot column
// is created with precision 6, so the stored value equals the one queried.
func ParseTimeSlot(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidTimeSlot
	}

	for _, layout := range timeSlotLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return NormalizeTimeSlot(t), nil
		}
	}

	return time.Time{}, ErrInvalidTimeSlot
}

func NormalizeTimeSlot(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func FormatTimeSlot(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
