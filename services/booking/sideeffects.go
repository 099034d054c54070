package booking

import (
	"context"
	"time"

	"emviapp/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fireSideEffects records the audit event, dispatches a notification and bumps
// analytics for a booking state change. All three are fire-and-forget: failures
// are logged, never surfaced to the caller, never retried and never rolled back.
// A detached context is used because the request context may already be done by
// the time these run.
func (e *DefaultBookingEngine) fireSideEffects(b models.Booking, eventType, actor string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		event := &models.BookingEvent{
			ID:        uuid.New().String(),
			BookingID: b.ID,
			Type:      eventType,
			Actor:     actor,
			Metadata: map[string]string{
				"artist_id": b.ArtistID,
				"date":      b.Date,
				"time":      b.Time,
				"status":    b.Status,
			},
		}
		if err := e.Events.Insert(ctx, event); err != nil {
			e.Logger.Warn("failed to write booking event",
				zap.String("bookingId", b.ID), zap.String("type", eventType), zap.Error(err))
		}

		if e.Notifier != nil {
			if err := e.Notifier.SendBookingNotification(ctx, b.ID, eventType, b); err != nil {
				e.Logger.Warn("failed to dispatch booking notification",
					zap.String("bookingId", b.ID), zap.String("type", eventType), zap.Error(err))
			}
		}

		if e.Analytics != nil {
			if err := e.Analytics.Record(ctx, eventType); err != nil {
				e.Logger.Warn("failed to record booking analytics",
					zap.String("type", eventType), zap.Error(err))
			}
		}
	}()
}
