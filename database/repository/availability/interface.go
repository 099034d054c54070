package availabilityRepo

import (
	"context"

	"emviapp/models"
)

// AvailabilityRepository defines methods for weekly availability and time-off data access.
type AvailabilityRepository interface {
	// ListWindows retrieves availability windows for an artist on a weekday
	// where is_available is true.
	ListWindows(ctx context.Context, artistID, weekday string) ([]models.AvailabilityWindow, error)
	// ListAllWindows retrieves every availability window for an artist.
	ListAllWindows(ctx context.Context, artistID string) ([]models.AvailabilityWindow, error)
	// ReplaceWindows swaps the artist's whole weekly schedule for the given set.
	ReplaceWindows(ctx context.Context, artistID string, windows []models.AvailabilityWindow) error

	// CreateTimeOff inserts a time-off period.
	CreateTimeOff(ctx context.Context, period *models.TimeOffPeriod) error
	// ListTimeOff retrieves all time-off periods for an artist.
	ListTimeOff(ctx context.Context, artistID string) ([]models.TimeOffPeriod, error)
	// ListTimeOffCovering retrieves the time-off periods that cover a date.
	ListTimeOffCovering(ctx context.Context, artistID, date string) ([]models.TimeOffPeriod, error)
	// DeleteTimeOff removes a time-off period owned by the artist.
	DeleteTimeOff(ctx context.Context, id, artistID string) error
}
