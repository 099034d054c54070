package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"emviapp/config"
	"emviapp/models"
	"emviapp/services/tasks"
	"emviapp/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitNotifyWorker runs the async notification worker in background.
func InitNotifyWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingNotify, handleBookingNotifyTask)

	// Start async worker with retry logic
	go func() {
		log.Println("[NotifyWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotifyWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotifyWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleBookingNotifyTask hands the notification to the delivery edge. The
// actual channel (push, email, SMS) is an external collaborator; this worker
// resolves the payload and records the dispatch.
func handleBookingNotifyTask(ctx context.Context, task *asynq.Task) error {
	var p models.BookingNotification
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[NotifyHandler] Invalid payload: %v", err)
		return err
	}

	logger := utils.GetLogger()
	logger.Info("dispatching booking notification",
		zap.String("notificationId", p.ID),
		zap.String("bookingId", p.BookingID),
		zap.String("eventType", p.EventType),
		zap.String("customerId", p.Booking.CustomerID),
		zap.String("artistId", p.Booking.ArtistID))

	return nil
}
