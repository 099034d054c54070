package booking

import (
	"context"
	"testing"
	"time"

	bookingRepo "emviapp/database/repository/booking"
	"emviapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRepo(status string) *fakeBookingRepo {
	return &fakeBookingRepo{bookings: []models.Booking{
		{
			ID: "b1", CustomerID: "cust-1", ArtistID: testArtist,
			Date: testMonday, Time: "10:00", DurationMinutes: 60,
			Status: status, PaymentIntentID: "pi_b1",
		},
	}}
}

func TestAcceptPendingBooking(t *testing.T) {
	engine, _ := newTestEngine(seededRepo(models.BookingStatusPending), mondayAvailability(), nil, nil)

	updated, err := engine.Accept(context.Background(), "b1", testArtist)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
}

func TestDeclinePendingBooking(t *testing.T) {
	engine, _ := newTestEngine(seededRepo(models.BookingStatusPendingPayment), mondayAvailability(), nil, nil)

	updated, err := engine.Decline(context.Background(), "b1", testArtist)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	engine, _ := newTestEngine(seededRepo(models.BookingStatusPending), mondayAvailability(), nil, nil)

	_, err := engine.Complete(context.Background(), "b1", testArtist)
	require.ErrorIs(t, err, bookingRepo.ErrInvalidTransition)

	engine, _ = newTestEngine(seededRepo(models.BookingStatusConfirmed), mondayAvailability(), nil, nil)
	updated, err := engine.Complete(context.Background(), "b1", testArtist)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, updated.Status)
}

func TestMarkNoShowRequiresConfirmed(t *testing.T) {
	engine, _ := newTestEngine(seededRepo(models.BookingStatusConfirmed), mondayAvailability(), nil, nil)

	updated, err := engine.MarkNoShow(context.Background(), "b1", testArtist)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusNoShow, updated.Status)
}

func TestCancelRejectsTerminalStatuses(t *testing.T) {
	for _, status := range []string{
		models.BookingStatusCompleted,
		models.BookingStatusCancelled,
		models.BookingStatusNoShow,
	} {
		engine, _ := newTestEngine(seededRepo(status), mondayAvailability(), nil, nil)
		_, err := engine.Cancel(context.Background(), "b1", "cust-1")
		require.ErrorIs(t, err, bookingRepo.ErrInvalidTransition, "status %s", status)
	}
}

func TestCancelActiveBooking(t *testing.T) {
	for _, status := range models.ActiveBookingStatuses {
		engine, _ := newTestEngine(seededRepo(status), mondayAvailability(), nil, nil)
		updated, err := engine.Cancel(context.Background(), "b1", "cust-1")
		require.NoError(t, err, "status %s", status)
		assert.Equal(t, models.BookingStatusCancelled, updated.Status)
	}
}

func TestDeclineVoidsOpenPaymentIntent(t *testing.T) {
	pay := &fakePaymentProvider{}
	engine, _ := newTestEngine(seededRepo(models.BookingStatusPendingPayment), mondayAvailability(), nil, pay)

	updated, err := engine.Decline(context.Background(), "b1", testArtist)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)

	// The authorization hold is released in the background.
	require.Eventually(t, func() bool {
		ids := pay.cancelledIDs()
		return len(ids) == 1 && ids[0] == "pi_b1"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCancelVoidsOpenPaymentIntent(t *testing.T) {
	pay := &fakePaymentProvider{}
	engine, _ := newTestEngine(seededRepo(models.BookingStatusPendingPayment), mondayAvailability(), nil, pay)

	_, err := engine.Cancel(context.Background(), "b1", "cust-1")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		ids := pay.cancelledIDs()
		return len(ids) == 1 && ids[0] == "pi_b1"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCompleteLeavesPaymentIntentAlone(t *testing.T) {
	pay := &fakePaymentProvider{}
	engine, _ := newTestEngine(seededRepo(models.BookingStatusConfirmed), mondayAvailability(), nil, pay)

	_, err := engine.Complete(context.Background(), "b1", testArtist)
	require.NoError(t, err)

	assert.Never(t, func() bool {
		return len(pay.cancelledIDs()) > 0
	}, 100*time.Millisecond, 10*time.Millisecond)
}

func TestTransitionUnknownBooking(t *testing.T) {
	engine, _ := newTestEngine(&fakeBookingRepo{}, mondayAvailability(), nil, nil)

	_, err := engine.Accept(context.Background(), "missing", testArtist)
	require.ErrorIs(t, err, bookingRepo.ErrNotFound)
}

func TestConfirmPaymentFromPendingPayment(t *testing.T) {
	engine, _ := newTestEngine(seededRepo(models.BookingStatusPendingPayment), mondayAvailability(), nil, nil)

	updated, err := engine.ConfirmPayment(context.Background(), "pi_b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
}

func TestConfirmPaymentIdempotentOnRedelivery(t *testing.T) {
	repo := seededRepo(models.BookingStatusPendingPayment)
	engine, _ := newTestEngine(repo, mondayAvailability(), nil, nil)

	first, err := engine.ConfirmPayment(context.Background(), "pi_b1")
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusConfirmed, first.Status)

	// Webhook deliveries retry; a second confirm must not error.
	second, err := engine.ConfirmPayment(context.Background(), "pi_b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, second.Status)
}

func TestConfirmPaymentRejectsTerminalBooking(t *testing.T) {
	engine, _ := newTestEngine(seededRepo(models.BookingStatusCancelled), mondayAvailability(), nil, nil)

	_, err := engine.ConfirmPayment(context.Background(), "pi_b1")
	require.Error(t, err)
}

func TestConfirmPaymentUnknownIntent(t *testing.T) {
	engine, _ := newTestEngine(&fakeBookingRepo{}, mondayAvailability(), nil, nil)

	_, err := engine.ConfirmPayment(context.Background(), "pi_unknown")
	require.Error(t, err)
}

func TestListBookingsRequiresAFilter(t *testing.T) {
	engine, _ := newTestEngine(seededRepo(models.BookingStatusPending), mondayAvailability(), nil, nil)

	_, err := engine.ListBookings(context.Background(), "", "", "")
	var bookingErr *BookingError
	require.ErrorAs(t, err, &bookingErr)
	assert.Equal(t, "validationError", bookingErr.Code)

	byArtist, err := engine.ListBookings(context.Background(), testArtist, "", "")
	require.NoError(t, err)
	assert.Len(t, byArtist, 1)

	byCustomer, err := engine.ListBookings(context.Background(), "", "cust-1", "")
	require.NoError(t, err)
	assert.Len(t, byCustomer, 1)

	byDate, err := engine.ListBookings(context.Background(), testArtist, "", testMonday)
	require.NoError(t, err)
	assert.Len(t, byDate, 1)
}
