package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"emviapp/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no record matches the query.
var ErrNotFound = errors.New("availability record not found")

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	windowColl  *mongo.Collection
	timeOffColl *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new instance of AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.DB()
	repo := &MongoAvailabilityRepo{
		windowColl:  db.Collection("availability_windows"),
		timeOffColl: db.Collection("time_off_periods"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	windowModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "artist_id", Value: 1}, {Key: "weekday", Value: 1}}},
	}
	if _, err := r.windowColl.Indexes().CreateMany(ctx, windowModels); err != nil {
		return fmt.Errorf("failed to create window indexes: %w", err)
	}

	timeOffModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "artist_id", Value: 1}, {Key: "start_date", Value: 1}}},
	}
	if _, err := r.timeOffColl.Indexes().CreateMany(ctx, timeOffModels); err != nil {
		return fmt.Errorf("failed to create time-off indexes: %w", err)
	}
	return nil
}
