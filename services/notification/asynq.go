package notification

import (
	"context"
	"fmt"
	"time"

	"emviapp/models"
	"emviapp/services/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqNotificationService enqueues booking notifications onto the Redis-backed
// task queue; the worker in cron/ picks them up and hands them to the delivery
// channel.
type AsynqNotificationService struct {
	client *asynq.Client
	logger *zap.Logger
}

// NewAsynqNotificationService creates a queue-backed NotificationService.
func NewAsynqNotificationService(redisOpts asynq.RedisClientOpt, logger *zap.Logger) *AsynqNotificationService {
	return &AsynqNotificationService{
		client: asynq.NewClient(redisOpts),
		logger: logger,
	}
}

// SendBookingNotification enqueues a notification task for the booking event.
func (s *AsynqNotificationService) SendBookingNotification(ctx context.Context, bookingID, eventType string, snapshot models.Booking) error {
	payload := models.BookingNotification{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		EventType: eventType,
		Booking:   snapshot,
		CreatedAt: time.Now(),
	}

	task, opts, err := tasks.NewBookingNotifyTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build notification task: %w", err)
	}

	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}

	s.logger.Debug("booking notification enqueued",
		zap.String("taskId", info.ID),
		zap.String("bookingId", bookingID),
		zap.String("eventType", eventType))
	return nil
}

// Close releases the underlying queue client.
func (s *AsynqNotificationService) Close() error {
	return s.client.Close()
}
