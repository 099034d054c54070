package models

import "time"

// Booking event types carried on the audit log and the realtime relay.
const (
	EventBookingCreated   = "booking_created"
	EventBookingUpdated   = "booking_updated"
	EventBookingCancelled = "booking_cancelled"
	EventBookingConfirmed = "booking_confirmed"
)

// BookingEvent is an audit-log record of a booking state change.
type BookingEvent struct {
	ID        string            `bson:"id" json:"id"`
	BookingID string            `bson:"booking_id" json:"booking_id"`
	Type      string            `bson:"type" json:"type"`
	Actor     string            `bson:"actor,omitempty" json:"actor,omitempty"`
	Metadata  map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
}
