package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "emviapp/database/repository/booking"
	"emviapp/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking orchestrates conflict check, price lookup, payment intent
// creation and the booking insert.
//
// Step order matters: nothing is written while conflicts exist, and nothing is
// written if a required payment intent cannot be created. Side effects (audit
// log, notification, analytics) run after a successful insert and never fail
// the booking.
func (e *DefaultBookingEngine) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResult, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	svc, err := e.Catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up service %s: %w", req.ServiceID, err)
	}
	if !svc.Active {
		return nil, NewServiceInactiveError(svc.ID)
	}

	conflicts, err := e.CheckConflicts(ctx, ConflictCheckRequest{
		ArtistID:        req.ArtistID,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: svc.DurationMinutes,
	})
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return &BookingResult{Conflicts: conflicts}, nil
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		CustomerID:      req.CustomerID,
		ArtistID:        req.ArtistID,
		ServiceID:       svc.ID,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: svc.DurationMinutes,
		Status:          models.BookingStatusPending,
		Amount:          svc.Price,
		Note:            req.Note,
		Metadata:        mergeMetadata(req.Metadata, map[string]string{"service_name": svc.Name}),
	}

	// Free services skip the payment authority entirely and go straight to pending.
	var intent *models.PaymentIntentRef
	if svc.Price > 0 {
		intent, err = e.Payments.CreatePaymentIntent(ctx, models.PaymentIntentRequest{
			AmountCents:     toCents(svc.Price),
			Currency:        e.Currency,
			CustomerID:      req.CustomerID,
			PaymentMethodID: req.PaymentMethodID,
			Metadata: map[string]string{
				"booking_id": booking.ID,
				"artist_id":  req.ArtistID,
				"service_id": svc.ID,
			},
		})
		if err != nil {
			// Abort before any write: no orphaned unpaid bookings.
			return nil, &PaymentError{Err: err}
		}
		booking.PaymentIntentID = intent.ID
		booking.Status = models.BookingStatusPendingPayment
	}

	if err := e.Repo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			// Lost the race between the conflict check and the insert; the unique
			// index caught it. Void the intent so the customer is never charged.
			if intent != nil {
				e.voidIntent(intent.ID)
			}
			return &BookingResult{
				Conflicts: []models.Conflict{{
					Type:    models.ConflictDoubleBooking,
					Message: "The slot was taken by another booking while this request was processed",
				}},
			}, nil
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	e.Logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("artistId", booking.ArtistID),
		zap.String("status", booking.Status))

	e.fireSideEffects(*booking, models.EventBookingCreated, req.CustomerID)

	return &BookingResult{Booking: booking, PaymentIntent: intent}, nil
}

func validateCreateRequest(req CreateBookingRequest) error {
	switch {
	case req.CustomerID == "":
		return NewValidationError("customer_id is required")
	case req.ArtistID == "":
		return NewValidationError("artist_id is required")
	case req.ServiceID == "":
		return NewValidationError("service_id is required")
	}
	if _, err := weekdayOf(req.Date); err != nil {
		return NewValidationError(err.Error())
	}
	if _, err := parseClock(req.Time); err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}

func mergeMetadata(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// voidIntent cancels a payment intent in the background; failure only logs.
func (e *DefaultBookingEngine) voidIntent(intentID string) {
	if e.Payments == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Payments.CancelPaymentIntent(ctx, intentID); err != nil {
			e.Logger.Warn("failed to cancel orphaned payment intent",
				zap.String("paymentIntentId", intentID), zap.Error(err))
		}
	}()
}
