package domain

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBlockNotFound      = errors.New("time block not found")
	ErrBlockAlreadyExists = errors.New("overlapping block already exists")
)

// Schedule is the persisted aggregate a storage collaborator builds from an
// orchestrator run's ScheduleBlocks: a user's set of committed TimeBlocks
// for one calendar date.
type Schedule struct {
	entityMeta
	eventRecorder
	userID uuid.UUID
	date   time.Time
	blocks []*TimeBlock
}

// NewSchedule creates a new schedule for a specific date.
func NewSchedule(userID uuid.UUID, date time.Time) *Schedule {
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	return &Schedule{
		entityMeta: newEntityMeta(),
		userID:     userID,
		date:       date,
		blocks:     make([]*TimeBlock, 0),
	}
}

// Getters
func (s *Schedule) UserID() uuid.UUID    { return s.userID }
func (s *Schedule) Date() time.Time      { return s.date }
func (s *Schedule) Blocks() []*TimeBlock { return s.blocks }

// AddBlock commits one ScheduleBlock produced by the orchestrator onto this
// schedule, rejecting it if it overlaps an already-committed block.
func (s *Schedule) AddBlock(blockType BlockType, taskID int, title, description string, startTime, endTime time.Time) (*TimeBlock, error) {
	block, err := NewTimeBlock(s.userID, s.ID(), blockType, taskID, title, description, startTime, endTime)
	if err != nil {
		return nil, err
	}

	for _, existing := range s.blocks {
		if existing.OverlapsWith(block) {
			return nil, ErrBlockAlreadyExists
		}
	}

	s.blocks = append(s.blocks, block)
	s.sortBlocks()
	s.touch()

	s.AddDomainEvent(NewBlockScheduled(s.ID(), block))

	return block, nil
}

// FindBlock finds a block by ID.
func (s *Schedule) FindBlock(blockID uuid.UUID) (*TimeBlock, error) {
	for _, block := range s.blocks {
		if block.ID() == blockID {
			return block, nil
		}
	}
	return nil, ErrBlockNotFound
}

// RemoveBlock removes a block from the schedule.
func (s *Schedule) RemoveBlock(blockID uuid.UUID) error {
	for i, block := range s.blocks {
		if block.ID() == blockID {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			s.touch()
			return nil
		}
	}
	return ErrBlockNotFound
}

// FindAvailableSlots finds gaps of at least minDuration between already
// committed blocks, for collaborators that need to know what this schedule
// still has room for without re-running the full materializer.
func (s *Schedule) FindAvailableSlots(dayStart, dayEnd time.Time, minDuration time.Duration) []TimeSlot {
	slots := make([]TimeSlot, 0)

	if len(s.blocks) == 0 {
		if dayEnd.Sub(dayStart) >= minDuration {
			slots = append(slots, TimeSlot{Start: dayStart, End: dayEnd})
		}
		return slots
	}

	if s.blocks[0].StartTime().Sub(dayStart) >= minDuration {
		slots = append(slots, TimeSlot{Start: dayStart, End: s.blocks[0].StartTime()})
	}

	for i := 0; i < len(s.blocks)-1; i++ {
		gapStart := s.blocks[i].EndTime()
		gapEnd := s.blocks[i+1].StartTime()
		if gapEnd.Sub(gapStart) >= minDuration {
			slots = append(slots, TimeSlot{Start: gapStart, End: gapEnd})
		}
	}

	lastEnd := s.blocks[len(s.blocks)-1].EndTime()
	if dayEnd.Sub(lastEnd) >= minDuration {
		slots = append(slots, TimeSlot{Start: lastEnd, End: dayEnd})
	}

	return slots
}

// TotalScheduledTime returns the total committed time across all blocks.
func (s *Schedule) TotalScheduledTime() time.Duration {
	total := time.Duration(0)
	for _, block := range s.blocks {
		total += block.Duration()
	}
	return total
}

func (s *Schedule) sortBlocks() {
	sort.Slice(s.blocks, func(i, j int) bool {
		return s.blocks[i].StartTime().Before(s.blocks[j].StartTime())
	})
}

// RehydrateSchedule recreates a schedule from persisted state.
func RehydrateSchedule(
	id uuid.UUID,
	userID uuid.UUID,
	date time.Time,
	blocks []*TimeBlock,
	createdAt, updatedAt time.Time,
) *Schedule {
	s := &Schedule{
		entityMeta: rehydrateEntityMeta(id, createdAt, updatedAt),
		userID:     userID,
		date:       date,
		blocks:     blocks,
	}
	s.sortBlocks()
	return s
}
