package models

import "time"

// BookingNotification is the payload handed to the notification dispatcher.
// Delivery is fire-and-forget; the booking flow never waits on it.
type BookingNotification struct {
	ID        string            `json:"id"`
	BookingID string            `json:"bookingId"`
	EventType string            `json:"eventType"`
	Booking   Booking           `json:"booking"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}
