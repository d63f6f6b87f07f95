package adapter

import (
	"sort"

	"github.com/felixgeelhaar/chrono/internal/scheduling/domain"
)

// ToSchedulableTask converts a persisted task into the core's view. A
// missing id is a programming error upstream of this boundary, not a
// recoverable input error: the caller is expected to have loaded the row
// by its own primary key.
func ToSchedulableTask(t PersistedTask) (domain.SchedulableTask, error) {
	if t.ID == 0 {
		return domain.SchedulableTask{}, ErrMissingTaskID
	}

	return domain.SchedulableTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Duration:    t.DurationMin,
		Deadline:    domain.EnsureUTC(t.Deadline),
		Priority:    t.Priority,
	}, nil
}

// ToSchedulableTasks converts a slice of persisted tasks, stopping at the
// first conversion error.
func ToSchedulableTasks(tasks []PersistedTask) ([]domain.SchedulableTask, error) {
	out := make([]domain.SchedulableTask, 0, len(tasks))
	for _, t := range tasks {
		converted, err := ToSchedulableTask(t)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// ToBusyInterval converts a persisted schedule item into a core
// BusyInterval, requiring both bounds to be present and normalizing them
// to UTC.
func ToBusyInterval(item PersistedScheduleItem) (domain.BusyInterval, error) {
	if item.Start.IsZero() || item.End.IsZero() {
		return domain.BusyInterval{}, ErrMissingScheduleItemBounds
	}

	start := domain.EnsureUTC(&item.Start)
	end := domain.EnsureUTC(&item.End)

	interval := domain.BusyInterval{
		TaskID:    item.TaskID,
		StartTime: *start,
		EndTime:   *end,
		Title:     item.Title,
	}
	if err := interval.Validate(); err != nil {
		return domain.BusyInterval{}, err
	}
	return interval, nil
}

// ToBusyIntervals converts a slice of persisted schedule items, stopping
// at the first conversion error.
func ToBusyIntervals(items []PersistedScheduleItem) ([]domain.BusyInterval, error) {
	out := make([]domain.BusyInterval, 0, len(items))
	for _, item := range items {
		converted, err := ToBusyInterval(item)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// ToWeeklyAvailability groups an unordered bag of persisted windows by
// weekday and sorts each day's windows by start time, producing the
// in-memory template the materializer consumes.
func ToWeeklyAvailability(availability PersistedWeeklyAvailability) domain.WeeklyAvailability {
	grouped := make(map[domain.Weekday][]domain.DailyWindow)
	for _, w := range availability.Windows {
		weekday := domain.Weekday(w.Weekday)
		grouped[weekday] = append(grouped[weekday], domain.DailyWindow{Start: w.Start, End: w.End})
	}
	for weekday := range grouped {
		windows := grouped[weekday]
		sort.Slice(windows, func(i, j int) bool {
			return windows[i].Start.Before(windows[j].Start)
		})
		grouped[weekday] = windows
	}
	return domain.NewWeeklyAvailability(availability.OwnerID, grouped)
}

// ToCreateDescriptor converts an output ScheduleBlock into the shape the
// repository layer persists as a new schedule item.
func ToCreateDescriptor(userID int, block domain.ScheduleBlock) PersistedScheduleItemCreate {
	return PersistedScheduleItemCreate{
		UserID:      userID,
		TaskID:      block.TaskID,
		StartTime:   block.Start,
		EndTime:     block.End,
		Source:      block.Source,
		Title:       block.Title,
		Description: block.Description,
	}
}

// ToCreateDescriptors converts every output block from one scheduling run.
func ToCreateDescriptors(userID int, blocks []domain.ScheduleBlock) []PersistedScheduleItemCreate {
	out := make([]PersistedScheduleItemCreate, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, ToCreateDescriptor(userID, b))
	}
	return out
}
