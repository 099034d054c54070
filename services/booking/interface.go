package booking

import (
	"context"

	availabilityRepo "emviapp/database/repository/availability"
	bookingRepo "emviapp/database/repository/booking"
	catalogRepo "emviapp/database/repository/catalog"
	eventsRepo "emviapp/database/repository/events"
	"emviapp/models"
	"emviapp/services/analytics"
	"emviapp/services/notification"

	"go.uber.org/zap"
)

// ConflictCheckRequest describes a candidate slot to validate.
type ConflictCheckRequest struct {
	ArtistID         string `json:"artist_id"`
	Date             string `json:"date"` // "YYYY-MM-DD"
	Time             string `json:"time"` // "HH:MM"
	DurationMinutes  int    `json:"duration_minutes,omitempty"`
	ExcludeBookingID string `json:"exclude_booking_id,omitempty"` // Set for reschedule checks
}

// CreateBookingRequest carries a customer's booking request.
type CreateBookingRequest struct {
	CustomerID      string            `json:"customer_id"`
	ArtistID        string            `json:"artist_id"`
	ServiceID       string            `json:"service_id"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	Note            string            `json:"note,omitempty"`
	PaymentMethodID string            `json:"payment_method_id,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// BookingResult is the outcome of a booking creation attempt. Exactly one of
// Booking or Conflicts is populated.
type BookingResult struct {
	Booking       *models.Booking          `json:"booking,omitempty"`
	PaymentIntent *models.PaymentIntentRef `json:"payment_intent,omitempty"`
	Conflicts     []models.Conflict        `json:"conflicts,omitempty"`
}

// BookingEngine is the callable interface the UI layer books through.
type BookingEngine interface {
	// CheckConflicts returns the reasons a candidate slot cannot currently be booked.
	// An empty slice means bookable. Repository failures surface as errors, never as
	// an empty conflict list.
	CheckConflicts(ctx context.Context, req ConflictCheckRequest) ([]models.Conflict, error)
	// CreateBooking runs conflict detection, price lookup, optional payment intent
	// creation and the booking insert, in that order.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResult, error)

	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetBookingByIntent(ctx context.Context, paymentIntentID string) (*models.Booking, error)
	ListBookings(ctx context.Context, artistID, customerID, date string) ([]models.Booking, error)

	// Lifecycle transitions.
	Accept(ctx context.Context, id, actor string) (*models.Booking, error)
	Decline(ctx context.Context, id, actor string) (*models.Booking, error)
	Complete(ctx context.Context, id, actor string) (*models.Booking, error)
	MarkNoShow(ctx context.Context, id, actor string) (*models.Booking, error)
	Cancel(ctx context.Context, id, actor string) (*models.Booking, error)
	// ConfirmPayment transitions the booking tied to a payment intent from
	// pending_payment to confirmed. Safe to call more than once.
	ConfirmPayment(ctx context.Context, paymentIntentID string) (*models.Booking, error)
}

// DefaultBookingEngine implements BookingEngine. It is constructed explicitly and
// wired through main; it holds no global state and performs no work at
// construction time.
type DefaultBookingEngine struct {
	Repo             bookingRepo.BookingRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	Catalog          catalogRepo.ServiceCatalogRepository
	Events           eventsRepo.EventRepository
	Payments         PaymentProvider
	Notifier         notification.NotificationService
	Analytics        *analytics.Recorder
	Currency         string
	Logger           *zap.Logger
}
