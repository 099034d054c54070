package availabilityRepo

import (
	"context"
	"fmt"

	"emviapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListWindows retrieves availability windows for an artist on a weekday where
// is_available is true.
func (r *MongoAvailabilityRepo) ListWindows(ctx context.Context, artistID, weekday string) ([]models.AvailabilityWindow, error) {
	filter := bson.M{
		"artist_id":    artistID,
		"weekday":      weekday,
		"is_available": true,
	}
	cursor, err := r.windowColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list windows for artist %s on %s: %w", artistID, weekday, err)
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("failed to decode availability windows: %w", err)
	}
	return windows, nil
}

// ListAllWindows retrieves every availability window for an artist.
func (r *MongoAvailabilityRepo) ListAllWindows(ctx context.Context, artistID string) ([]models.AvailabilityWindow, error) {
	cursor, err := r.windowColl.Find(ctx, bson.M{"artist_id": artistID})
	if err != nil {
		return nil, fmt.Errorf("failed to list windows for artist %s: %w", artistID, err)
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("failed to decode availability windows: %w", err)
	}
	return windows, nil
}

// ListTimeOff retrieves all time-off periods for an artist.
func (r *MongoAvailabilityRepo) ListTimeOff(ctx context.Context, artistID string) ([]models.TimeOffPeriod, error) {
	return r.listTimeOff(ctx, bson.M{"artist_id": artistID})
}

// ListTimeOffCovering retrieves the time-off periods that cover a date.
func (r *MongoAvailabilityRepo) ListTimeOffCovering(ctx context.Context, artistID, date string) ([]models.TimeOffPeriod, error) {
	filter := bson.M{
		"artist_id":  artistID,
		"start_date": bson.M{"$lte": date},
		"end_date":   bson.M{"$gte": date},
	}
	return r.listTimeOff(ctx, filter)
}

func (r *MongoAvailabilityRepo) listTimeOff(ctx context.Context, filter bson.M) ([]models.TimeOffPeriod, error) {
	cursor, err := r.timeOffColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list time-off periods: %w", err)
	}
	defer cursor.Close(ctx)

	var periods []models.TimeOffPeriod
	if err := cursor.All(ctx, &periods); err != nil {
		return nil, fmt.Errorf("failed to decode time-off periods: %w", err)
	}
	return periods, nil
}
