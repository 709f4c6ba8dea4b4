package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeSlot(t *testing.T) {
	want := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"zulu", "2025-06-01T19:00:00Z", want},
		{"offset", "2025-06-01T21:00:00+02:00", want},
		{"naive", "2025-06-01T19:00:00", want},
		{"naive minutes", "2025-06-01T19:00", want},
		{"space separated", "2025-06-01 19:00:00", want},
		{"fraction", "2025-06-01T19:00:00.000000Z", want},
		{"nanoseconds truncated", "2025-06-01T19:00:00.0000009Z", want},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeSlot(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseTimeSlotRejects(t *testing.T) {
	for _, raw := range []string{"", "   ", "tomorrow", "2025-13-01T19:00:00Z", "01/06/2025 19:00"} {
		_, err := ParseTimeSlot(raw)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot, raw)
	}
}

func TestFormatTimeSlot(t *testing.T) {
	slot := time.Date(2025, 6, 1, 21, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	assert.Equal(t, "2025-06-01T19:00:00Z", FormatTimeSlot(slot))
}
