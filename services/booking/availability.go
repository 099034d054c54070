package booking

import (
	"context"
	"fmt"

	availabilityRepo "emviapp/database/repository/availability"
	"emviapp/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var validWeekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// AvailabilityService manages an artist's weekly schedule and time-off periods.
type AvailabilityService interface {
	SetWeeklySchedule(ctx context.Context, artistID string, windows []models.AvailabilityWindow) error
	GetWeeklySchedule(ctx context.Context, artistID string) ([]models.AvailabilityWindow, error)
	AddTimeOff(ctx context.Context, period *models.TimeOffPeriod) error
	ListTimeOff(ctx context.Context, artistID string) ([]models.TimeOffPeriod, error)
	RemoveTimeOff(ctx context.Context, id, artistID string) error
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	Repo   availabilityRepo.AvailabilityRepository
	Logger *zap.Logger
}

// SetWeeklySchedule validates and replaces the artist's full weekly window set.
func (s *DefaultAvailabilityService) SetWeeklySchedule(ctx context.Context, artistID string, windows []models.AvailabilityWindow) error {
	if artistID == "" {
		return NewValidationError("artist_id is required")
	}
	for i := range windows {
		w := &windows[i]
		if !validWeekdays[w.Weekday] {
			return NewValidationError(fmt.Sprintf("invalid weekday %q", w.Weekday))
		}
		start, err := parseClock(w.StartTime)
		if err != nil {
			return NewValidationError(err.Error())
		}
		end, err := parseClock(w.EndTime)
		if err != nil {
			return NewValidationError(err.Error())
		}
		if start >= end {
			return NewValidationError(fmt.Sprintf("window %s-%s on %s is empty or inverted", w.StartTime, w.EndTime, w.Weekday))
		}
		if w.ID == "" {
			w.ID = uuid.New().String()
		}
	}

	if err := s.Repo.ReplaceWindows(ctx, artistID, windows); err != nil {
		return err
	}
	s.Logger.Info("weekly schedule updated",
		zap.String("artistId", artistID), zap.Int("windows", len(windows)))
	return nil
}

// GetWeeklySchedule retrieves every availability window for an artist.
func (s *DefaultAvailabilityService) GetWeeklySchedule(ctx context.Context, artistID string) ([]models.AvailabilityWindow, error) {
	return s.Repo.ListAllWindows(ctx, artistID)
}

// AddTimeOff validates and records a time-off period.
func (s *DefaultAvailabilityService) AddTimeOff(ctx context.Context, period *models.TimeOffPeriod) error {
	if period.ArtistID == "" {
		return NewValidationError("artist_id is required")
	}
	if _, err := weekdayOf(period.StartDate); err != nil {
		return NewValidationError(err.Error())
	}
	if _, err := weekdayOf(period.EndDate); err != nil {
		return NewValidationError(err.Error())
	}
	if period.EndDate < period.StartDate {
		return NewValidationError("end_date is before start_date")
	}
	if period.ID == "" {
		period.ID = uuid.New().String()
	}

	if err := s.Repo.CreateTimeOff(ctx, period); err != nil {
		return err
	}
	s.Logger.Info("time off recorded",
		zap.String("artistId", period.ArtistID),
		zap.String("from", period.StartDate),
		zap.String("to", period.EndDate))
	return nil
}

// ListTimeOff retrieves all time-off periods for an artist.
func (s *DefaultAvailabilityService) ListTimeOff(ctx context.Context, artistID string) ([]models.TimeOffPeriod, error) {
	return s.Repo.ListTimeOff(ctx, artistID)
}

// RemoveTimeOff deletes a time-off period owned by the artist.
func (s *DefaultAvailabilityService) RemoveTimeOff(ctx context.Context, id, artistID string) error {
	return s.Repo.DeleteTimeOff(ctx, id, artistID)
}
