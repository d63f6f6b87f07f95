// Package adapter converts between the scheduling core's plain value types
// and the shapes persistence, messaging, and API layers actually store and
// transmit. The core never imports this package; this package imports the
// core.
package adapter

import "time"

// PersistedTask is the storage-facing view of a task record: whatever the
// repository layer loaded, before it becomes a domain.SchedulableTask.
type PersistedTask struct {
	ID          int
	Title       string
	Description string
	DurationMin int
	Deadline    *time.Time
	Priority    int
}

// PersistedScheduleItem is the storage-facing view of a previously
// committed busy interval (a meeting, an already-scheduled block, or any
// other externally-sourced occupied range).
type PersistedScheduleItem struct {
	TaskID *int
	Start  time.Time
	End    time.Time
	Title  string
}

// PersistedDailyWindow is a single recurring local-time window as stored,
// tagged with the weekday it recurs on using the same 0=MON..6=SUN
// encoding as domain.Weekday.
type PersistedDailyWindow struct {
	Weekday int
	Start   time.Time
	End     time.Time
}

// PersistedWeeklyAvailability is the storage-facing view of a user's
// recurring availability template: an unordered, possibly unsorted bag of
// windows across all weekdays.
type PersistedWeeklyAvailability struct {
	OwnerID int
	Windows []PersistedDailyWindow
}

// PersistedScheduleItemCreate is the shape handed to the repository layer
// to persist one output ScheduleBlock as a new schedule item.
type PersistedScheduleItemCreate struct {
	UserID      int
	TaskID      int
	StartTime   time.Time
	EndTime     time.Time
	Source      string
	Title       string
	Description string
}
