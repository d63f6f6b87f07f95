package domain

import "time"

// BlockSourceTask is the only source tag the core currently emits.
const BlockSourceTask = "task"

// ScheduleBlock is one scheduled occurrence of a task over a UTC interval.
// A task scheduled under splitting may produce several blocks sharing the
// same TaskID.
type ScheduleBlock struct {
	TaskID      int
	Start       time.Time
	End         time.Time
	Source      string
	Title       string
	Description string
}

// DurationMinutes returns the block's width in integer minutes.
func (b ScheduleBlock) DurationMinutes() int {
	return int(b.End.Sub(b.Start).Minutes())
}
