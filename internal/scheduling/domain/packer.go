package domain

import (
	"container/list"
	"time"
)

// Pack walks freeSlots in chronological order, consuming tasks from a FIFO
// queue seeded with rankedTasks. Non-splitting mode skips a task that
// doesn't fit and seeks the first later task that does, preserving the
// rejected task's position at the head of the queue. Splitting mode carves
// the unfit task's remainder back onto the head of the queue as a
// by-value copy and emits the shortened original, filling the slot exactly.
func Pack(rankedTasks []SchedulableTask, freeSlots AvailableSlots, allowSplitting bool) (blocks []ScheduleBlock, unscheduled []SchedulableTask) {
	queue := list.New()
	for _, t := range rankedTasks {
		queue.PushBack(t)
	}

	for _, slot := range freeSlots.Slots {
		blocks = append(blocks, fillSlot(slot, queue, allowSplitting)...)
	}

	unscheduled = make([]SchedulableTask, 0, queue.Len())
	for e := queue.Front(); e != nil; e = e.Next() {
		unscheduled = append(unscheduled, e.Value.(SchedulableTask))
	}
	return blocks, unscheduled
}

func fillSlot(slot TimeSlot, queue *list.List, allowSplitting bool) []ScheduleBlock {
	cursor := slot.Start
	remaining := slot.DurationMinutes()
	var blocks []ScheduleBlock

	for remaining > 0 && queue.Len() > 0 {
		front := queue.Front()
		task := front.Value.(SchedulableTask)
		queue.Remove(front)

		if task.CanFitDuration(remaining) {
			block := createBlock(task, cursor)
			cursor = block.End
			remaining -= task.Duration
			blocks = append(blocks, block)
			continue
		}

		if allowSplitting {
			remainder := task.withDuration(task.Duration - remaining)
			task = task.withDuration(remaining)
			queue.PushFront(remainder)

			block := createBlock(task, cursor)
			cursor = block.End
			blocks = append(blocks, block)
			remaining = 0
			continue
		}

		fitting := findBestFittingElement(queue, remaining)
		if fitting == nil {
			queue.PushFront(task)
			break
		}
		fittingTask := fitting.Value.(SchedulableTask)
		queue.Remove(fitting)
		queue.PushFront(task)

		block := createBlock(fittingTask, cursor)
		cursor = block.End
		remaining -= fittingTask.Duration
		blocks = append(blocks, block)
	}

	return blocks
}

// findBestFittingElement scans the queue from head toward tail for the
// first task whose duration fits within remaining minutes.
func findBestFittingElement(queue *list.List, remaining int) *list.Element {
	for e := queue.Front(); e != nil; e = e.Next() {
		if e.Value.(SchedulableTask).CanFitDuration(remaining) {
			return e
		}
	}
	return nil
}

func createBlock(t SchedulableTask, start time.Time) ScheduleBlock {
	return ScheduleBlock{
		TaskID:      t.ID,
		Start:       start,
		End:         start.Add(time.Duration(t.Duration) * time.Minute),
		Source:      BlockSourceTask,
		Title:       t.Title,
		Description: t.Description,
	}
}
