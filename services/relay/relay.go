package relay

import (
	"context"
	"sync"
	"time"

	"emviapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Relay subscribes to the MongoDB change streams of the bookings and
// booking_events collections, translates raw change documents into typed Events
// and fans them out through the Bus. It is a best-effort UI-refresh signal: no
// delivery guarantees, no replay, no backpressure.
//
// Nothing happens at construction time; Start opens the streams and Stop tears
// them down.
type Relay struct {
	bookings *mongo.Collection
	events   *mongo.Collection
	bus      *Bus
	logger   *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRelay creates a stopped relay over the given collections.
func NewRelay(bookings, events *mongo.Collection, logger *zap.Logger) *Relay {
	return &Relay{
		bookings: bookings,
		events:   events,
		bus:      NewBus(),
		logger:   logger,
	}
}

// Subscribe registers an in-process listener.
func (r *Relay) Subscribe() *Subscription {
	return r.bus.Subscribe()
}

// Start opens the change streams and begins fanning out events. Calling Start
// on a running relay is a no-op.
func (r *Relay) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(2)
	go r.watch(runCtx, r.bookings, r.translateBookingChange)
	go r.watch(runCtx, r.events, r.translateEventChange)

	r.logger.Info("realtime relay started")
}

// Stop tears the streams down and waits for the watch loops to exit.
func (r *Relay) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	r.wg.Wait()
	r.logger.Info("realtime relay stopped")
}

type changeDoc struct {
	OperationType string   `bson:"operationType"`
	FullDocument  bson.Raw `bson:"fullDocument"`
}

// watch runs one change stream until the context is cancelled, reopening the
// stream with a short backoff on error.
func (r *Relay) watch(ctx context.Context, coll *mongo.Collection, translate func(changeDoc) (Event, bool)) {
	defer r.wg.Done()

	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": []string{"insert", "update", "replace"}},
		}}},
	}

	for {
		stream, err := coll.Watch(ctx, pipeline, opts)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			r.logger.Warn("failed to open change stream, retrying",
				zap.String("collection", coll.Name()), zap.Error(err))
			select {
			case <-time.After(2 * time.Second):
				continue
			case <-ctx.Done():
				return
			}
		}

		for stream.Next(ctx) {
			var doc changeDoc
			if err := stream.Decode(&doc); err != nil {
				r.logger.Warn("failed to decode change document", zap.Error(err))
				continue
			}
			if event, ok := translate(doc); ok {
				r.bus.Publish(event)
			}
		}

		streamErr := stream.Err()
		stream.Close(context.Background())
		if ctx.Err() != nil {
			return
		}
		if streamErr != nil {
			r.logger.Warn("change stream interrupted, reopening",
				zap.String("collection", coll.Name()), zap.Error(streamErr))
		}
		select {
		case <-time.After(2 * time.Second):
		case <-ctx.Done():
			return
		}
	}
}

// translateBookingChange maps a bookings-collection change to a typed event
// based on the operation and the resulting status.
func (r *Relay) translateBookingChange(doc changeDoc) (Event, bool) {
	var booking models.Booking
	if err := bson.Unmarshal(doc.FullDocument, &booking); err != nil {
		r.logger.Warn("failed to unmarshal booking change", zap.Error(err))
		return Event{}, false
	}
	if booking.ID == "" {
		return Event{}, false
	}

	eventType := models.EventBookingUpdated
	switch {
	case doc.OperationType == "insert":
		eventType = models.EventBookingCreated
	case booking.Status == models.BookingStatusCancelled:
		eventType = models.EventBookingCancelled
	case booking.Status == models.BookingStatusConfirmed:
		eventType = models.EventBookingConfirmed
	}

	return Event{
		Type:      eventType,
		BookingID: booking.ID,
		Booking:   &booking,
		At:        time.Now(),
	}, true
}

// translateEventChange maps an audit-log insert to a typed event, reusing the
// event type recorded on the row.
func (r *Relay) translateEventChange(doc changeDoc) (Event, bool) {
	if doc.OperationType != "insert" {
		return Event{}, false
	}

	var record models.BookingEvent
	if err := bson.Unmarshal(doc.FullDocument, &record); err != nil {
		r.logger.Warn("failed to unmarshal audit event change", zap.Error(err))
		return Event{}, false
	}
	if record.BookingID == "" {
		return Event{}, false
	}

	return Event{
		Type:      record.Type,
		BookingID: record.BookingID,
		At:        time.Now(),
	}, true
}
