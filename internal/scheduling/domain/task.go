package domain

import "time"

// SchedulableTask is the core's view of a work item: immutable to the
// orchestrator and ranker, but the packer may carry a locally-owned copy
// whose Duration it shortens while splitting.
type SchedulableTask struct {
	ID          int
	Title       string
	Description string
	Duration    int // expected_duration_minutes, 1..480
	Deadline    *time.Time
	Priority    int // 0..4, 0 = highest
}

// Validate checks the invariants an adapter must enforce before a task
// enters the core: a present id, and duration/priority within range.
func (t SchedulableTask) Validate() error {
	if t.ID == 0 {
		return ErrMissingTaskID
	}
	if t.Duration < 1 || t.Duration > 480 {
		return ErrInvalidDuration
	}
	if t.Priority < 0 || t.Priority > 4 {
		return ErrInvalidPriority
	}
	return nil
}

// CanFitDuration reports whether the task fits within the given number of
// remaining minutes in a slot.
func (t SchedulableTask) CanFitDuration(minutes int) bool {
	return t.Duration <= minutes
}

// withDuration returns a by-value copy of the task with a different
// duration, used by the packer when splitting a task across slot
// boundaries. No state is shared with the original.
func (t SchedulableTask) withDuration(minutes int) SchedulableTask {
	t.Duration = minutes
	return t
}
