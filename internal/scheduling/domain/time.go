package domain

import "time"

// NowUTC returns the current wall clock as a UTC instant.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// EnsureUTC converts a possibly-zoned instant to UTC. A nil input passes
// through unchanged; the function is idempotent.
func EnsureUTC(instant *time.Time) *time.Time {
	if instant == nil {
		return nil
	}
	utc := instant.UTC()
	return &utc
}

// ToUserZone projects a UTC instant to the wall-clock time of the given IANA
// zone. An unknown zone name is not an error: the conversion silently falls
// back to UTC.
func ToUserZone(instant time.Time, zone string) time.Time {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		loc = time.UTC
	}
	return instant.In(loc)
}

// FromUserZone localizes a naive wall-clock date/time under the given zone
// and converts the result to UTC. An unknown zone name falls back to UTC,
// treating the wall-clock fields as already-UTC. DST-ambiguous local times
// are resolved by the host zone database's own default disambiguation; no
// custom policy is applied here.
func FromUserZone(year int, month time.Month, day, hour, min, sec int, zone string) time.Time {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		loc = time.UTC
	}
	return time.Date(year, month, day, hour, min, sec, 0, loc).UTC()
}

// NextHalfHour rounds strictly forward to the next wall-clock minute that is
// :00 or :30. An instant already exactly on a half-hour boundary advances by
// a full 30 minutes rather than returning itself.
func NextHalfHour(instant time.Time) time.Time {
	truncated := instant.Truncate(time.Minute)
	minute := truncated.Minute()
	switch {
	case minute < 30:
		return truncated.Add(time.Duration(30-minute) * time.Minute)
	default:
		return truncated.Add(time.Duration(60-minute) * time.Minute)
	}
}

// NextWeekday returns the next UTC instant at 00:00 on targetWeekday. If
// fromInstant already falls on targetWeekday, the result is the same
// weekday one full week later — this function never returns its input's
// own day, even when the weekdays match.
func NextWeekday(fromInstant time.Time, targetWeekday Weekday) time.Time {
	currentWeekday := WeekdayFromTime(fromInstant)
	raw := int(targetWeekday) - int(currentWeekday) - 1
	daysAhead := ((raw%7)+7)%7 + 1
	year, month, day := fromInstant.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, daysAhead)
}
