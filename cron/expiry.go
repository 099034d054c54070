package cron

import (
	"context"
	"time"

	"emviapp/config"
	bookingRepo "emviapp/database/repository/booking"
	"emviapp/services/booking"
	"emviapp/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// InitExpirySweep schedules the stale-payment sweep: pending_payment bookings
// that sit unpaid past the configured TTL are cancelled so their slots free up.
// Returns the scheduler so main can stop it on shutdown.
func InitExpirySweep(engine booking.BookingEngine, repo bookingRepo.BookingRepository) *cron.Cron {
	c := cron.New()
	logger := utils.GetLogger()

	_, err := c.AddFunc("@every 1m", func() {
		sweepStalePayments(engine, repo, logger)
	})
	if err != nil {
		logger.Fatal("failed to schedule expiry sweep", zap.Error(err))
	}

	c.Start()
	logger.Info("expiry sweep scheduled",
		zap.Int("ttlMinutes", config.AppConfig.PendingPaymentTTLMin))
	return c
}

func sweepStalePayments(engine booking.BookingEngine, repo bookingRepo.BookingRepository, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ttl := time.Duration(config.AppConfig.PendingPaymentTTLMin) * time.Minute
	cutoff := time.Now().Add(-ttl)

	stale, err := repo.ListStalePendingPayment(ctx, cutoff)
	if err != nil {
		logger.Warn("expiry sweep: failed to list stale bookings", zap.Error(err))
		return
	}

	for i := range stale {
		if _, err := engine.Cancel(ctx, stale[i].ID, "expiry_sweep"); err != nil {
			logger.Warn("expiry sweep: failed to cancel stale booking",
				zap.String("bookingId", stale[i].ID), zap.Error(err))
			continue
		}
		logger.Info("stale pending_payment booking cancelled",
			zap.String("bookingId", stale[i].ID),
			zap.Time("createdAt", stale[i].CreatedAt))
	}
}
