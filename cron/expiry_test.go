package cron

import (
	"context"
	"sync"
	"testing"
	"time"

	"emviapp/config"
	"emviapp/models"
	"emviapp/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubStaleLister struct {
	stale      []models.Booking
	gotCutoff  time.Time
	listCalled bool
}

func (s *stubStaleLister) ListStalePendingPayment(_ context.Context, cutoff time.Time) ([]models.Booking, error) {
	s.listCalled = true
	s.gotCutoff = cutoff
	return s.stale, nil
}

// Only the repo method the sweep touches is stubbed; the rest panic if reached.
func (s *stubStaleLister) Create(context.Context, *models.Booking) error { panic("unexpected") }
func (s *stubStaleLister) GetByID(context.Context, string) (*models.Booking, error) {
	panic("unexpected")
}
func (s *stubStaleLister) ListByArtistDate(context.Context, string, string, []string) ([]models.Booking, error) {
	panic("unexpected")
}
func (s *stubStaleLister) ListByCustomer(context.Context, string) ([]models.Booking, error) {
	panic("unexpected")
}
func (s *stubStaleLister) ListByArtist(context.Context, string) ([]models.Booking, error) {
	panic("unexpected")
}
func (s *stubStaleLister) UpdateStatus(context.Context, string, []string, string) (*models.Booking, error) {
	panic("unexpected")
}
func (s *stubStaleLister) GetByPaymentIntent(context.Context, string) (*models.Booking, error) {
	panic("unexpected")
}

type cancelRecorder struct {
	booking.BookingEngine

	mu        sync.Mutex
	cancelled []string
	actors    []string
}

func (r *cancelRecorder) Cancel(_ context.Context, id, actor string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled = append(r.cancelled, id)
	r.actors = append(r.actors, actor)
	return &models.Booking{ID: id, Status: models.BookingStatusCancelled}, nil
}

func TestSweepCancelsOnlyWhatTheRepoReportsStale(t *testing.T) {
	config.AppConfig.PendingPaymentTTLMin = 15

	repo := &stubStaleLister{stale: []models.Booking{
		{ID: "old-1", Status: models.BookingStatusPendingPayment},
		{ID: "old-2", Status: models.BookingStatusPendingPayment},
	}}
	engine := &cancelRecorder{}

	before := time.Now().Add(-15 * time.Minute)
	sweepStalePayments(engine, repo, zap.NewNop())
	after := time.Now().Add(-15 * time.Minute)

	require.True(t, repo.listCalled)
	// The cutoff is now minus the configured TTL.
	assert.False(t, repo.gotCutoff.Before(before))
	assert.False(t, repo.gotCutoff.After(after))

	assert.Equal(t, []string{"old-1", "old-2"}, engine.cancelled)
	for _, actor := range engine.actors {
		assert.Equal(t, "expiry_sweep", actor)
	}
}

func TestSweepNoStaleBookings(t *testing.T) {
	config.AppConfig.PendingPaymentTTLMin = 15

	repo := &stubStaleLister{}
	engine := &cancelRecorder{}

	sweepStalePayments(engine, repo, zap.NewNop())

	require.True(t, repo.listCalled)
	assert.Empty(t, engine.cancelled)
}
