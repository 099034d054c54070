package booking

import "emviapp/models"

const (
	suggestionStep = 30 // minutes between candidate start times
	maxSuggestions = 5
)

// suggestTimes derives alternative start times from the artist's actual free
// slots: candidate starts are stepped through each availability window and kept
// when the full requested duration fits without touching an active booking.
func suggestTimes(windows []models.AvailabilityWindow, active []models.Booking, duration int) []string {
	if duration <= 0 {
		duration = defaultSlotMinutes
	}

	type interval struct{ start, end int }
	booked := make([]interval, 0, len(active))
	for i := range active {
		s, err := parseClock(active[i].Time)
		if err != nil {
			continue
		}
		d := active[i].DurationMinutes
		if d <= 0 {
			d = defaultSlotMinutes
		}
		booked = append(booked, interval{start: s, end: s + d})
	}

	var suggestions []string
	for i := range windows {
		winStart, err1 := parseClock(windows[i].StartTime)
		winEnd, err2 := parseClock(windows[i].EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		for start := winStart; start+duration <= winEnd; start += suggestionStep {
			free := true
			for _, b := range booked {
				if overlaps(start, start+duration, b.start, b.end) {
					free = false
					break
				}
			}
			if free {
				suggestions = append(suggestions, formatClock(start))
				if len(suggestions) >= maxSuggestions {
					return suggestions
				}
			}
		}
	}
	return suggestions
}
