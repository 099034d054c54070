package relay

import (
	"testing"

	"emviapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func rawBooking(t *testing.T, b models.Booking) bson.Raw {
	t.Helper()
	data, err := bson.Marshal(b)
	require.NoError(t, err)
	return bson.Raw(data)
}

func TestTranslateBookingChangeInsert(t *testing.T) {
	r := &Relay{bus: NewBus(), logger: zap.NewNop()}

	event, ok := r.translateBookingChange(changeDoc{
		OperationType: "insert",
		FullDocument:  rawBooking(t, models.Booking{ID: "b1", Status: models.BookingStatusPending}),
	})
	require.True(t, ok)
	assert.Equal(t, models.EventBookingCreated, event.Type)
	assert.Equal(t, "b1", event.BookingID)
	require.NotNil(t, event.Booking)
	assert.Equal(t, models.BookingStatusPending, event.Booking.Status)
}

func TestTranslateBookingChangeStatusMapping(t *testing.T) {
	r := &Relay{bus: NewBus(), logger: zap.NewNop()}

	cases := []struct {
		status string
		want   string
	}{
		{models.BookingStatusCancelled, models.EventBookingCancelled},
		{models.BookingStatusConfirmed, models.EventBookingConfirmed},
		{models.BookingStatusCompleted, models.EventBookingUpdated},
		{models.BookingStatusNoShow, models.EventBookingUpdated},
	}
	for _, tc := range cases {
		event, ok := r.translateBookingChange(changeDoc{
			OperationType: "update",
			FullDocument:  rawBooking(t, models.Booking{ID: "b1", Status: tc.status}),
		})
		require.True(t, ok, "status %s", tc.status)
		assert.Equal(t, tc.want, event.Type, "status %s", tc.status)
	}
}

func TestTranslateBookingChangeSkipsEmptyDocument(t *testing.T) {
	r := &Relay{bus: NewBus(), logger: zap.NewNop()}

	// Updates without a resolvable full document (e.g. the row was deleted
	// before the lookup) produce no event.
	_, ok := r.translateBookingChange(changeDoc{
		OperationType: "update",
		FullDocument:  rawBooking(t, models.Booking{}),
	})
	assert.False(t, ok)
}

func TestTranslateEventChange(t *testing.T) {
	r := &Relay{bus: NewBus(), logger: zap.NewNop()}

	data, err := bson.Marshal(models.BookingEvent{
		ID: "ev1", BookingID: "b1", Type: models.EventBookingCancelled, Actor: "cust-1",
	})
	require.NoError(t, err)

	event, ok := r.translateEventChange(changeDoc{OperationType: "insert", FullDocument: bson.Raw(data)})
	require.True(t, ok)
	assert.Equal(t, models.EventBookingCancelled, event.Type)
	assert.Equal(t, "b1", event.BookingID)

	// Audit rows are immutable; only inserts fan out.
	_, ok = r.translateEventChange(changeDoc{OperationType: "update", FullDocument: bson.Raw(data)})
	assert.False(t, ok)
}
