package domain

import (
	"sort"
	"time"
)

// DailyWindow is a local wall-clock start/end pair (no date) associated
// with a weekday in the weekly template.
type DailyWindow struct {
	Start time.Time // only Hour/Minute/Second are meaningful
	End   time.Time
}

// Validate enforces end > start within the same wall-clock day.
func (w DailyWindow) Validate() error {
	if !wallClock(w.End).After(wallClock(w.Start)) {
		return ErrInvalidWindowRange
	}
	return nil
}

// wallClock normalizes a time to a fixed reference date so that only the
// hour/minute/second components participate in comparisons.
func wallClock(t time.Time) time.Time {
	return time.Date(1, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// WeeklyAvailability is the recurring weekday -> ordered-list-of-DailyWindow
// template. Weekdays absent from Windows are non-working.
type WeeklyAvailability struct {
	OwnerID int
	Windows map[Weekday][]DailyWindow
}

// NewWeeklyAvailability builds a template from an unordered set of windows
// per weekday, sorting each day's windows by start time.
func NewWeeklyAvailability(ownerID int, windows map[Weekday][]DailyWindow) WeeklyAvailability {
	sorted := make(map[Weekday][]DailyWindow, len(windows))
	for weekday, dayWindows := range windows {
		cp := make([]DailyWindow, len(dayWindows))
		copy(cp, dayWindows)
		sort.Slice(cp, func(i, j int) bool {
			return wallClock(cp[i].Start).Before(wallClock(cp[j].Start))
		})
		sorted[weekday] = cp
	}
	return WeeklyAvailability{OwnerID: ownerID, Windows: sorted}
}
