package models

import "time"

// AvailabilityWindow is a recurring weekly time range during which an artist accepts bookings.
type AvailabilityWindow struct {
	ID          string `bson:"id" json:"id"`
	ArtistID    string `bson:"artist_id" json:"artist_id"`
	Weekday     string `bson:"weekday" json:"weekday"`       // Lowercase weekday name, e.g. "monday"
	StartTime   string `bson:"start_time" json:"start_time"` // "HH:MM"
	EndTime     string `bson:"end_time" json:"end_time"`     // "HH:MM", exclusive upper bound
	IsAvailable bool   `bson:"is_available" json:"is_available"`
}

// TimeOffPeriod overrides weekly availability for a date range (inclusive on both ends).
type TimeOffPeriod struct {
	ID        string    `bson:"id" json:"id"`
	ArtistID  string    `bson:"artist_id" json:"artist_id"`
	StartDate string    `bson:"start_date" json:"start_date"` // "YYYY-MM-DD"
	EndDate   string    `bson:"end_date" json:"end_date"`     // "YYYY-MM-DD"
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Covers reports whether the given date falls inside the time-off period.
// Dates are ISO formatted so string comparison is safe.
func (t *TimeOffPeriod) Covers(date string) bool {
	return t.StartDate <= date && date <= t.EndDate
}
