package eventsRepo

import (
	"context"

	"emviapp/models"
)

// EventRepository defines methods for the booking audit log.
type EventRepository interface {
	// Insert appends an event to the audit log.
	Insert(ctx context.Context, event *models.BookingEvent) error
	// ListByBooking retrieves the audit trail for a booking, oldest first.
	ListByBooking(ctx context.Context, bookingID string) ([]models.BookingEvent, error)
}
