package tasks

import (
	"encoding/json"

	"emviapp/models"

	"github.com/hibiken/asynq"
)

const TypeBookingNotify = "notify:booking"

// NewBookingNotifyTask builds the asynq task carrying a booking notification.
func NewBookingNotifyTask(payload models.BookingNotification) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingNotify, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}

	return task, opts, nil
}
