package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"emviapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListByArtistDate retrieves bookings for an artist on a given date.
func (r *MongoBookingRepo) ListByArtistDate(ctx context.Context, artistID, date string, statuses []string) ([]models.Booking, error) {
	filter := bson.M{"artist_id": artistID, "date": date}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for artist %s on %s: %w", artistID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ListByCustomer retrieves bookings made by a customer, newest first.
func (r *MongoBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"customer_id": customerID})
}

// ListByArtist retrieves bookings for an artist, newest first.
func (r *MongoBookingRepo) ListByArtist(ctx context.Context, artistID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"artist_id": artistID})
}

func (r *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// GetByPaymentIntent retrieves the booking tied to a payment intent.
func (r *MongoBookingRepo) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"payment_intent_id": paymentIntentID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking for payment intent %s: %w", paymentIntentID, err)
	}
	return &booking, nil
}

// ListStalePendingPayment retrieves pending_payment bookings created before the cutoff.
func (r *MongoBookingRepo) ListStalePendingPayment(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"status":     models.BookingStatusPendingPayment,
		"created_at": bson.M{"$lt": cutoff},
	}
	return r.list(ctx, filter)
}
