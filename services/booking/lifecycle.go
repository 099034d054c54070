package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "emviapp/database/repository/booking"
	"emviapp/models"

	"go.uber.org/zap"
)

// GetBooking retrieves a booking by ID.
func (e *DefaultBookingEngine) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return e.Repo.GetByID(ctx, id)
}

// GetBookingByIntent retrieves the booking tied to a payment intent.
func (e *DefaultBookingEngine) GetBookingByIntent(ctx context.Context, paymentIntentID string) (*models.Booking, error) {
	return e.Repo.GetByPaymentIntent(ctx, paymentIntentID)
}

// ListBookings lists bookings by artist, customer, or artist+date.
func (e *DefaultBookingEngine) ListBookings(ctx context.Context, artistID, customerID, date string) ([]models.Booking, error) {
	switch {
	case artistID != "" && date != "":
		return e.Repo.ListByArtistDate(ctx, artistID, date, nil)
	case artistID != "":
		return e.Repo.ListByArtist(ctx, artistID)
	case customerID != "":
		return e.Repo.ListByCustomer(ctx, customerID)
	}
	return nil, NewValidationError("artist_id or customer_id is required")
}

// Accept confirms a pending booking on behalf of the artist.
func (e *DefaultBookingEngine) Accept(ctx context.Context, id, actor string) (*models.Booking, error) {
	return e.transition(ctx, id, actor,
		[]string{models.BookingStatusPending, models.BookingStatusPendingPayment},
		models.BookingStatusConfirmed, models.EventBookingConfirmed)
}

// Decline rejects a pending booking on behalf of the artist.
func (e *DefaultBookingEngine) Decline(ctx context.Context, id, actor string) (*models.Booking, error) {
	return e.transition(ctx, id, actor,
		[]string{models.BookingStatusPending, models.BookingStatusPendingPayment},
		models.BookingStatusCancelled, models.EventBookingCancelled)
}

// Complete marks a confirmed booking as carried out.
func (e *DefaultBookingEngine) Complete(ctx context.Context, id, actor string) (*models.Booking, error) {
	return e.transition(ctx, id, actor,
		[]string{models.BookingStatusConfirmed},
		models.BookingStatusCompleted, models.EventBookingUpdated)
}

// MarkNoShow records that the customer did not show up for a confirmed booking.
func (e *DefaultBookingEngine) MarkNoShow(ctx context.Context, id, actor string) (*models.Booking, error) {
	return e.transition(ctx, id, actor,
		[]string{models.BookingStatusConfirmed},
		models.BookingStatusNoShow, models.EventBookingUpdated)
}

// Cancel cancels any still-active booking.
func (e *DefaultBookingEngine) Cancel(ctx context.Context, id, actor string) (*models.Booking, error) {
	return e.transition(ctx, id, actor,
		models.ActiveBookingStatuses,
		models.BookingStatusCancelled, models.EventBookingCancelled)
}

// ConfirmPayment transitions the booking tied to a payment intent from
// pending_payment to confirmed. Webhook deliveries retry, so a booking that is
// already confirmed is returned as-is rather than treated as an error.
func (e *DefaultBookingEngine) ConfirmPayment(ctx context.Context, paymentIntentID string) (*models.Booking, error) {
	b, err := e.Repo.GetByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("no booking for payment intent %s: %w", paymentIntentID, err)
	}

	updated, err := e.transition(ctx, b.ID, "payment_webhook",
		[]string{models.BookingStatusPendingPayment},
		models.BookingStatusConfirmed, models.EventBookingConfirmed)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrInvalidTransition) && b.Status == models.BookingStatusConfirmed {
			return b, nil
		}
		return nil, err
	}
	return updated, nil
}

func (e *DefaultBookingEngine) transition(ctx context.Context, id, actor string, from []string, to, eventType string) (*models.Booking, error) {
	updated, err := e.Repo.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return nil, err
	}

	e.Logger.Info("booking status changed",
		zap.String("bookingId", id),
		zap.String("status", to),
		zap.String("actor", actor))

	// A cancelled booking must not keep a hold on the customer's card. The
	// intent is manual-capture, so voiding releases the authorization whether
	// payment was still pending or already confirmed.
	if to == models.BookingStatusCancelled && updated.PaymentIntentID != "" {
		e.voidIntent(updated.PaymentIntentID)
	}

	e.fireSideEffects(*updated, eventType, actor)
	return updated, nil
}
