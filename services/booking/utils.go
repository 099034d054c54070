package booking

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseClock converts an "HH:MM" time-of-day string to minutes from midnight.
func parseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// formatClock converts minutes from midnight back to an "HH:MM" string.
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// weekdayOf returns the lowercase weekday name for an ISO date.
func weekdayOf(date string) (string, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}
	return strings.ToLower(d.Weekday().String()), nil
}

// overlaps reports whether two half-open minute intervals intersect.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// toCents converts a major-unit price to integer cents for the payment authority.
func toCents(price float64) int64 {
	return int64(price*100 + 0.5)
}
