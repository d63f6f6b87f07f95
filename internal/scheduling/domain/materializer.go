package domain

import "time"

// MaterializeWeek expands a weekly template against a UTC anchor into
// concrete UTC free intervals for one week, accounting for the user's zone
// and subtracting busyIntervals.
//
// weekAnchor identifies where to begin within the week: the remaining days
// of the anchor's own weekday through Sunday are included. On the anchor
// day only, a window ending at or before weekAnchor is skipped entirely,
// and a window starting before weekAnchor is clamped to start at weekAnchor.
func MaterializeWeek(availability WeeklyAvailability, weekAnchor time.Time, busyIntervals []BusyInterval, zone string) AvailableSlots {
	var result AvailableSlots

	anchorWeekday := WeekdayFromTime(weekAnchor)
	anchorYear, anchorMonth, anchorDay := weekAnchor.Date()
	anchorDate := time.Date(anchorYear, anchorMonth, anchorDay, 0, 0, 0, 0, time.UTC)

	for dayOffset := int(anchorWeekday); dayOffset <= int(Sunday); dayOffset++ {
		currentDate := anchorDate.AddDate(0, 0, dayOffset-int(anchorWeekday))
		weekday := WeekdayFromTime(currentDate)

		windows, ok := availability.Windows[weekday]
		if !ok {
			continue
		}

		for _, window := range windows {
			windowStartUTC := FromUserZone(currentDate.Year(), currentDate.Month(), currentDate.Day(),
				window.Start.Hour(), window.Start.Minute(), window.Start.Second(), zone)
			windowEndUTC := FromUserZone(currentDate.Year(), currentDate.Month(), currentDate.Day(),
				window.End.Hour(), window.End.Minute(), window.End.Second(), zone)

			if dayOffset == int(anchorWeekday) {
				if !windowEndUTC.After(weekAnchor) {
					continue
				}
				if windowStartUTC.Before(weekAnchor) {
					windowStartUTC = weekAnchor
				}
			}

			overlapping := make([]BusyInterval, 0, len(busyIntervals))
			for _, b := range busyIntervals {
				if b.Overlaps(windowStartUTC, windowEndUTC) {
					overlapping = append(overlapping, b)
				}
			}

			result.AddSlots(Subtract(windowStartUTC, windowEndUTC, overlapping))
		}
	}

	return result
}
