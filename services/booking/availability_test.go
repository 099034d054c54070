package booking

import (
	"context"
	"testing"

	availabilityRepo "emviapp/database/repository/availability"
	"emviapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAvailabilityService(repo *fakeAvailabilityRepo) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{Repo: repo, Logger: zap.NewNop()}
}

func TestSetWeeklyScheduleReplacesWindows(t *testing.T) {
	repo := mondayAvailability()
	svc := newAvailabilityService(repo)

	err := svc.SetWeeklySchedule(context.Background(), testArtist, []models.AvailabilityWindow{
		{ArtistID: testArtist, Weekday: "tuesday", StartTime: "12:00", EndTime: "20:00", IsAvailable: true},
	})
	require.NoError(t, err)

	windows, err := svc.GetWeeklySchedule(context.Background(), testArtist)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, "tuesday", windows[0].Weekday)
	assert.NotEmpty(t, windows[0].ID)
}

func TestSetWeeklyScheduleRejectsBadWindows(t *testing.T) {
	svc := newAvailabilityService(&fakeAvailabilityRepo{})

	cases := []models.AvailabilityWindow{
		{Weekday: "moonday", StartTime: "09:00", EndTime: "17:00"},
		{Weekday: "monday", StartTime: "9am", EndTime: "17:00"},
		{Weekday: "monday", StartTime: "17:00", EndTime: "09:00"}, // inverted
		{Weekday: "monday", StartTime: "09:00", EndTime: "09:00"}, // empty
	}
	for _, w := range cases {
		err := svc.SetWeeklySchedule(context.Background(), testArtist, []models.AvailabilityWindow{w})
		var bookingErr *BookingError
		require.ErrorAs(t, err, &bookingErr, "window %+v", w)
		assert.Equal(t, "validationError", bookingErr.Code)
	}
}

func TestAddTimeOffValidatesDates(t *testing.T) {
	svc := newAvailabilityService(&fakeAvailabilityRepo{})

	err := svc.AddTimeOff(context.Background(), &models.TimeOffPeriod{
		ArtistID: testArtist, StartDate: "2026-09-10", EndDate: "2026-09-01",
	})
	var bookingErr *BookingError
	require.ErrorAs(t, err, &bookingErr)

	period := &models.TimeOffPeriod{
		ArtistID: testArtist, StartDate: "2026-09-01", EndDate: "2026-09-10", Reason: "vacation",
	}
	require.NoError(t, svc.AddTimeOff(context.Background(), period))
	assert.NotEmpty(t, period.ID)

	listed, err := svc.ListTimeOff(context.Background(), testArtist)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "vacation", listed[0].Reason)
}

func TestRemoveTimeOffEnforcesOwnership(t *testing.T) {
	repo := &fakeAvailabilityRepo{timeOff: []models.TimeOffPeriod{
		{ID: "off1", ArtistID: testArtist, StartDate: "2026-09-01", EndDate: "2026-09-02"},
	}}
	svc := newAvailabilityService(repo)

	err := svc.RemoveTimeOff(context.Background(), "off1", "someone-else")
	require.ErrorIs(t, err, availabilityRepo.ErrNotFound)

	require.NoError(t, svc.RemoveTimeOff(context.Background(), "off1", testArtist))
	listed, err := svc.ListTimeOff(context.Background(), testArtist)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
