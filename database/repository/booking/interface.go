package bookingRepo

import (
	"context"
	"time"

	"emviapp/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record. Returns ErrSlotTaken when an active
	// booking already holds the same (artist, date, time) slot.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListByArtistDate retrieves bookings for an artist on a date, filtered to the
	// given statuses (all statuses when empty).
	ListByArtistDate(ctx context.Context, artistID, date string, statuses []string) ([]models.Booking, error)
	// ListByCustomer retrieves bookings made by a customer, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	// ListByArtist retrieves bookings for an artist, newest first.
	ListByArtist(ctx context.Context, artistID string) ([]models.Booking, error)
	// UpdateStatus transitions a booking from one of the given statuses to the new
	// status and returns the updated record. Returns ErrInvalidTransition when the
	// booking is not in an allowed source status.
	UpdateStatus(ctx context.Context, id string, from []string, to string) (*models.Booking, error)
	// GetByPaymentIntent retrieves a booking by its payment intent ID.
	GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Booking, error)
	// ListStalePendingPayment retrieves pending_payment bookings created before the cutoff.
	ListStalePendingPayment(ctx context.Context, cutoff time.Time) ([]models.Booking, error)
}
