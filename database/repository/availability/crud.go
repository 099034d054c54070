package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"emviapp/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ReplaceWindows swaps the artist's whole weekly schedule for the given set.
// Delete-then-insert keeps the schedule a single source of truth; readers between
// the two steps may briefly observe an empty schedule, which only makes the
// conflict detector more conservative.
func (r *MongoAvailabilityRepo) ReplaceWindows(ctx context.Context, artistID string, windows []models.AvailabilityWindow) error {
	if _, err := r.windowColl.DeleteMany(ctx, bson.M{"artist_id": artistID}); err != nil {
		return fmt.Errorf("failed to clear windows for artist %s: %w", artistID, err)
	}
	if len(windows) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(windows))
	for i := range windows {
		windows[i].ArtistID = artistID
		docs = append(docs, windows[i])
	}
	if _, err := r.windowColl.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert windows for artist %s: %w", artistID, err)
	}
	return nil
}

// CreateTimeOff inserts a time-off period.
func (r *MongoAvailabilityRepo) CreateTimeOff(ctx context.Context, period *models.TimeOffPeriod) error {
	period.CreatedAt = time.Now()
	if _, err := r.timeOffColl.InsertOne(ctx, period); err != nil {
		return fmt.Errorf("failed to create time-off period: %w", err)
	}
	return nil
}

// DeleteTimeOff removes a time-off period owned by the artist.
func (r *MongoAvailabilityRepo) DeleteTimeOff(ctx context.Context, id, artistID string) error {
	res, err := r.timeOffColl.DeleteOne(ctx, bson.M{"id": id, "artist_id": artistID})
	if err != nil {
		return fmt.Errorf("failed to delete time-off period %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
