package models

// Conflict types describing why a requested slot cannot be booked.
const (
	ConflictTimeOverlap       = "time_overlap"
	ConflictArtistUnavailable = "artist_unavailable"
	ConflictSalonClosed       = "salon_closed"
	ConflictDoubleBooking     = "double_booking"
)

// Conflict is a transient value describing why a requested slot cannot be booked.
// It is derived, never persisted.
type Conflict struct {
	Type                 string   `json:"type"`
	Message              string   `json:"message"`
	ConflictingBookingID string   `json:"conflicting_booking_id,omitempty"`
	SuggestedTimes       []string `json:"suggested_times,omitempty"`
}
