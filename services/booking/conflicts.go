package booking

import (
	"context"
	"fmt"

	"emviapp/models"

	"go.uber.org/zap"
)

// Fallback slot length when neither the request nor an existing booking carries a
// duration. Keeps the detector duration-aware without guessing service length.
const defaultSlotMinutes = 30

// CheckConflicts returns the reasons a candidate (artist, date, time) slot cannot
// currently be booked. The checks run in order: active-booking overlap, time-off
// override, weekly availability containment.
//
// Failure policy: fail closed. A repository error aborts the check with an error
// rather than reporting the slot as free.
func (e *DefaultBookingEngine) CheckConflicts(ctx context.Context, req ConflictCheckRequest) ([]models.Conflict, error) {
	if req.ArtistID == "" {
		return nil, NewValidationError("artist_id is required")
	}
	start, err := parseClock(req.Time)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}
	weekday, err := weekdayOf(req.Date)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	duration := req.DurationMinutes
	end := start + duration
	if duration <= 0 {
		end = start + defaultSlotMinutes
	}

	conflicts := make([]models.Conflict, 0, 2)

	// Active bookings for the artist on that date.
	active, err := e.Repo.ListByArtistDate(ctx, req.ArtistID, req.Date, models.ActiveBookingStatuses)
	if err != nil {
		return nil, fmt.Errorf("conflict check: failed to fetch bookings: %w", err)
	}
	for i := range active {
		b := &active[i]
		if b.ID == req.ExcludeBookingID {
			continue
		}
		if c, ok := e.overlapConflict(b, req.Time, start, end); ok {
			conflicts = append(conflicts, c)
		}
	}

	// Time-off periods override the weekly schedule outright.
	timeOff, err := e.AvailabilityRepo.ListTimeOffCovering(ctx, req.ArtistID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("conflict check: failed to fetch time off: %w", err)
	}
	if len(timeOff) > 0 {
		msg := "Artist is unavailable on this date"
		if timeOff[0].Reason != "" {
			msg = fmt.Sprintf("Artist is unavailable on this date: %s", timeOff[0].Reason)
		}
		conflicts = append(conflicts, models.Conflict{
			Type:    models.ConflictArtistUnavailable,
			Message: msg,
		})
		return conflicts, nil
	}

	// Weekly availability containment.
	windows, err := e.AvailabilityRepo.ListWindows(ctx, req.ArtistID, weekday)
	if err != nil {
		return nil, fmt.Errorf("conflict check: failed to fetch availability: %w", err)
	}
	if !slotWithinWindows(windows, start, end) {
		e.Logger.Debug("requested slot outside availability",
			zap.String("artistId", req.ArtistID),
			zap.String("date", req.Date),
			zap.String("time", req.Time))
		conflicts = append(conflicts, models.Conflict{
			Type:           models.ConflictArtistUnavailable,
			Message:        fmt.Sprintf("Artist does not accept bookings at %s on %ss", req.Time, weekday),
			SuggestedTimes: suggestTimes(windows, active, duration),
		})
	}

	return conflicts, nil
}

// overlapConflict checks a candidate slot against one active booking. An exact
// time match always conflicts; when both durations are known the full intervals
// are compared as well.
func (e *DefaultBookingEngine) overlapConflict(b *models.Booking, reqTime string, start, end int) (models.Conflict, bool) {
	if b.Time == reqTime {
		return models.Conflict{
			Type:                 models.ConflictTimeOverlap,
			Message:              fmt.Sprintf("Another booking already holds the %s slot", b.Time),
			ConflictingBookingID: b.ID,
		}, true
	}

	bStart, err := parseClock(b.Time)
	if err != nil {
		// A malformed stored time cannot be interval-checked; the exact-match
		// guard above and the unique index still cover it.
		e.Logger.Warn("booking has unparseable time", zap.String("bookingId", b.ID), zap.String("time", b.Time))
		return models.Conflict{}, false
	}
	bEnd := bStart + b.DurationMinutes
	if b.DurationMinutes <= 0 {
		bEnd = bStart + defaultSlotMinutes
	}

	if overlaps(start, end, bStart, bEnd) {
		return models.Conflict{
			Type: models.ConflictTimeOverlap,
			Message: fmt.Sprintf("Requested time overlaps an existing booking from %s to %s",
				b.Time, formatClock(bEnd)),
			ConflictingBookingID: b.ID,
		}, true
	}
	return models.Conflict{}, false
}

// slotWithinWindows reports whether [start, end) is contained in any window.
func slotWithinWindows(windows []models.AvailabilityWindow, start, end int) bool {
	for i := range windows {
		winStart, err1 := parseClock(windows[i].StartTime)
		winEnd, err2 := parseClock(windows[i].EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		if start >= winStart && end <= winEnd {
			return true
		}
	}
	return false
}
