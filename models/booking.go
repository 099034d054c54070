package models

import "time"

// Booking status values. Completed, cancelled and no_show are terminal.
const (
	BookingStatusPending        = "pending"
	BookingStatusPendingPayment = "pending_payment"
	BookingStatusConfirmed      = "confirmed"
	BookingStatusCancelled      = "cancelled"
	BookingStatusCompleted      = "completed"
	BookingStatusNoShow         = "no_show"
)

// ActiveBookingStatuses are the statuses that hold a slot against new requests.
var ActiveBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusPendingPayment,
	BookingStatusConfirmed,
}

// Booking represents a requested service between a customer and an artist.
type Booking struct {
	ID              string            `bson:"id" json:"id"`                             // Unique booking identifier (UUID)
	CustomerID      string            `bson:"customer_id" json:"customer_id"`           // Customer who requested the booking
	ArtistID        string            `bson:"artist_id" json:"artist_id"`               // Artist being booked
	ServiceID       string            `bson:"service_id" json:"service_id"`             // Catalog service requested
	Date            string            `bson:"date" json:"date"`                         // Booking date in "YYYY-MM-DD" format
	Time            string            `bson:"time" json:"time"`                         // Requested time-of-day in "HH:MM" format
	DurationMinutes int               `bson:"duration_minutes" json:"duration_minutes"` // Service duration
	Status          string            `bson:"status" json:"status"`
	PaymentIntentID string            `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"`
	Amount          float64           `bson:"amount" json:"amount"` // Price at booking time, major currency units
	Note            string            `bson:"note,omitempty" json:"note,omitempty"`
	Metadata        map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt       time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time         `bson:"updated_at" json:"updated_at"`
}

// IsTerminal reports whether the booking is in a terminal status.
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

// IsActive reports whether the booking still holds its slot.
func (b *Booking) IsActive() bool {
	switch b.Status {
	case BookingStatusPending, BookingStatusPendingPayment, BookingStatusConfirmed:
		return true
	}
	return false
}
