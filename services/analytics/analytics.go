package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Recorder bumps per-day booking counters in Redis. Counters are best-effort
// operational metrics; callers log failures and move on.
type Recorder struct {
	client *redis.Client
}

// NewRecorder creates an analytics Recorder over the given Redis client.
func NewRecorder(client *redis.Client) *Recorder {
	return &Recorder{client: client}
}

// Record increments today's counter for the given event type.
func (r *Recorder) Record(ctx context.Context, eventType string) error {
	key := fmt.Sprintf("analytics:bookings:%s:%s", eventType, time.Now().Format("2006-01-02"))
	if err := r.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to increment %s: %w", key, err)
	}
	// Keep counters for 90 days.
	r.client.Expire(ctx, key, 90*24*time.Hour)
	return nil
}

// CountForDay reads the counter for an event type on a given date.
func (r *Recorder) CountForDay(ctx context.Context, eventType, date string) (int64, error) {
	key := fmt.Sprintf("analytics:bookings:%s:%s", eventType, date)
	n, err := r.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return n, nil
}
