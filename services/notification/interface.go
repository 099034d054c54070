package notification

import (
	"context"

	"emviapp/models"
)

// NotificationService dispatches booking notifications. Dispatch is
// fire-and-forget from the booking flow's point of view: the engine logs a
// failed dispatch and carries on.
type NotificationService interface {
	SendBookingNotification(ctx context.Context, bookingID, eventType string, snapshot models.Booking) error
}
