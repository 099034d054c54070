package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	minutes, err := parseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	_, err = parseClock("9:30 AM")
	assert.Error(t, err)
	_, err = parseClock("24:00")
	assert.Error(t, err)
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, clock := range []string{"00:00", "09:05", "13:30", "23:59"} {
		minutes, err := parseClock(clock)
		require.NoError(t, err)
		assert.Equal(t, clock, formatClock(minutes))
	}
}

func TestWeekdayOf(t *testing.T) {
	day, err := weekdayOf("2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, "monday", day)

	_, err = weekdayOf("07/09/2026")
	assert.Error(t, err)
}

func TestOverlapsHalfOpen(t *testing.T) {
	assert.True(t, overlaps(600, 660, 630, 690))  // partial
	assert.True(t, overlaps(600, 660, 610, 650))  // containment
	assert.False(t, overlaps(600, 660, 660, 720)) // adjacent
	assert.False(t, overlaps(600, 660, 720, 780)) // disjoint
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(4500), toCents(45.00))
	assert.Equal(t, int64(4999), toCents(49.99))
	assert.Equal(t, int64(0), toCents(0))
}
