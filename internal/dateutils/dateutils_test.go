package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-04-15", time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)},
		{"2025-04-15 14:30:00", time.Date(2025, 4, 15, 14, 30, 0, 0, time.UTC)},
		{"15.04.2025", time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)},
		{"04/15/2025", time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)},
		{" 2025-04-15 ", time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.True(t, got.Equal(tt.want), "ParseDate(%q) = %v", tt.input, got)
	}

	_, err := ParseDate("not a date")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestStartAndEndOfDay(t *testing.T) {
	noon := time.Date(2025, 4, 15, 12, 34, 56, 789, time.UTC)

	start := StartOfDay(noon)
	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), start)

	end := EndOfDay(noon)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	// Anything on the same calendar day is not after the end instant.
	lastTick := time.Date(2025, 4, 15, 23, 59, 59, 999999999, time.UTC)
	assert.False(t, lastTick.After(end))
	assert.True(t, end.Before(time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC)))
}

func TestInRange(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)

	assert.True(t, InRange(time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC), start, end))
	// Both boundary days are inclusive, whatever the time of day.
	assert.True(t, InRange(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), start, end))
	assert.True(t, InRange(time.Date(2025, 4, 30, 23, 59, 0, 0, time.UTC), start, end))
	assert.False(t, InRange(time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC), start, end))
	assert.False(t, InRange(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), start, end))

	// Zero bounds leave that side open.
	assert.True(t, InRange(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), time.Time{}, end))
	assert.True(t, InRange(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC), start, time.Time{}))
	assert.True(t, InRange(time.Now(), time.Time{}, time.Time{}))
}

func TestDaysUntil(t *testing.T) {
	asOf := time.Date(2025, 4, 15, 18, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntil(asOf, time.Date(2025, 4, 15, 2, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, DaysUntil(asOf, time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, DaysUntil(asOf, time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -5, DaysUntil(asOf, time.Date(2025, 4, 10, 23, 0, 0, 0, time.UTC)))
}

func TestMonthBounds(t *testing.T) {
	d := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(d))
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), EndOfMonth(d))

	leap := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), EndOfMonth(leap))
}
