package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoutingKeyBlockScheduled     = "scheduling.block.scheduled"
	RoutingKeySchedulingComplete = "scheduling.run.completed"
)

// BlockScheduled is emitted once per persisted TimeBlock after an
// orchestrator run.
type BlockScheduled struct {
	eventMeta
	BlockID   uuid.UUID `json:"block_id"`
	TaskID    int       `json:"task_id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// NewBlockScheduled creates a BlockScheduled event.
func NewBlockScheduled(scheduleID uuid.UUID, block *TimeBlock) BlockScheduled {
	return BlockScheduled{
		eventMeta: newEventMeta(scheduleID, RoutingKeyBlockScheduled),
		BlockID:   block.ID(),
		TaskID:    block.TaskID(),
		Title:     block.Title(),
		StartTime: block.StartTime(),
		EndTime:   block.EndTime(),
	}
}

// SchedulingCompleted summarizes one orchestrator run: how many blocks were
// placed and how many tasks were left in warnings.
type SchedulingCompleted struct {
	eventMeta
	ScheduledCount   int `json:"scheduled_count"`
	UnscheduledCount int `json:"unscheduled_count"`
}

// NewSchedulingCompleted creates a SchedulingCompleted event.
func NewSchedulingCompleted(scheduleID uuid.UUID, scheduledCount, unscheduledCount int) SchedulingCompleted {
	return SchedulingCompleted{
		eventMeta:        newEventMeta(scheduleID, RoutingKeySchedulingComplete),
		ScheduledCount:   scheduledCount,
		UnscheduledCount: unscheduledCount,
	}
}
