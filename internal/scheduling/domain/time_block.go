package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeRange  = errors.New("end time must be after start time")
	ErrTimeBlockTooShort = errors.New("time block must be at least 1 minute")
)

// MinBlockDuration is the minimum persisted block duration. It is looser
// than the core's packer, which may legitimately emit sub-5-minute
// remainder blocks when splitting.
const MinBlockDuration = time.Minute

// BlockType represents the type of persisted scheduled item. The core only
// ever emits BlockTypeTask; other types are reserved for collaborators that
// persist alongside the scheduler's output but are out of scope here.
type BlockType string

const (
	BlockTypeTask BlockType = "task"
)

// TimeBlock is the persisted row representation of one scheduled
// occurrence: the storage collaborator's committed counterpart to the
// core's transient ScheduleBlock.
type TimeBlock struct {
	entityMeta
	userID      uuid.UUID
	scheduleID  uuid.UUID
	blockType   BlockType
	taskID      int
	title       string
	description string
	startTime   time.Time
	endTime     time.Time
	completed   bool
	missed      bool
}

// NewTimeBlock creates a new persisted time block from a core ScheduleBlock
// destined for a given user's schedule.
func NewTimeBlock(
	userID uuid.UUID,
	scheduleID uuid.UUID,
	blockType BlockType,
	taskID int,
	title, description string,
	startTime, endTime time.Time,
) (*TimeBlock, error) {
	if !endTime.After(startTime) {
		return nil, ErrInvalidTimeRange
	}
	if endTime.Sub(startTime) < MinBlockDuration {
		return nil, ErrTimeBlockTooShort
	}

	return &TimeBlock{
		entityMeta:  newEntityMeta(),
		userID:      userID,
		scheduleID:  scheduleID,
		blockType:   blockType,
		taskID:      taskID,
		title:       title,
		description: description,
		startTime:   startTime,
		endTime:     endTime,
	}, nil
}

// Getters
func (tb *TimeBlock) UserID() uuid.UUID     { return tb.userID }
func (tb *TimeBlock) ScheduleID() uuid.UUID { return tb.scheduleID }
func (tb *TimeBlock) BlockType() BlockType  { return tb.blockType }
func (tb *TimeBlock) TaskID() int           { return tb.taskID }
func (tb *TimeBlock) Title() string         { return tb.title }
func (tb *TimeBlock) Description() string   { return tb.description }
func (tb *TimeBlock) StartTime() time.Time  { return tb.startTime }
func (tb *TimeBlock) EndTime() time.Time    { return tb.endTime }
func (tb *TimeBlock) IsCompleted() bool     { return tb.completed }
func (tb *TimeBlock) IsMissed() bool        { return tb.missed }

// Duration returns the block duration
func (tb *TimeBlock) Duration() time.Duration {
	return tb.endTime.Sub(tb.startTime)
}

// OverlapsWith checks if this block overlaps with another
func (tb *TimeBlock) OverlapsWith(other *TimeBlock) bool {
	return tb.startTime.Before(other.endTime) && tb.endTime.After(other.startTime)
}

// Contains checks if a time falls within this block
func (tb *TimeBlock) Contains(t time.Time) bool {
	return !t.Before(tb.startTime) && t.Before(tb.endTime)
}

// MarkCompleted marks the block as completed by the downstream tracking
// collaborator once its start time has passed.
func (tb *TimeBlock) MarkCompleted() {
	tb.completed = true
	tb.touch()
}

// MarkMissed marks the block as missed.
func (tb *TimeBlock) MarkMissed() {
	tb.missed = true
	tb.touch()
}

// RehydrateTimeBlock recreates a time block from persisted state.
func RehydrateTimeBlock(
	id uuid.UUID,
	userID uuid.UUID,
	scheduleID uuid.UUID,
	blockType BlockType,
	taskID int,
	title, description string,
	startTime, endTime time.Time,
	completed, missed bool,
	createdAt, updatedAt time.Time,
) *TimeBlock {
	return &TimeBlock{
		entityMeta:  rehydrateEntityMeta(id, createdAt, updatedAt),
		userID:      userID,
		scheduleID:  scheduleID,
		blockType:   blockType,
		taskID:      taskID,
		title:       title,
		description: description,
		startTime:   startTime,
		endTime:     endTime,
		completed:   completed,
		missed:      missed,
	}
}
