package domain

import (
	"sort"
	"time"
)

// Subtract produces the maximal disjoint free sub-intervals of
// [windowStart, windowEnd) not covered by any of busyIntervals. The input
// slice is not mutated; busyIntervals need not be pre-sorted.
//
// Nested busy intervals (b2 contained in b1) are handled by advancing the
// cursor with max(cursor, busy.End) rather than busy.End directly.
func Subtract(windowStart, windowEnd time.Time, busyIntervals []BusyInterval) []TimeSlot {
	if len(busyIntervals) == 0 {
		return []TimeSlot{{Start: windowStart, End: windowEnd}}
	}

	sorted := make([]BusyInterval, len(busyIntervals))
	copy(sorted, busyIntervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	cursor := windowStart
	var free []TimeSlot
	for _, busy := range sorted {
		if busy.StartTime.After(cursor) {
			end := busy.StartTime
			if windowEnd.Before(end) {
				end = windowEnd
			}
			free = append(free, TimeSlot{Start: cursor, End: end})
		}
		if busy.EndTime.After(cursor) {
			cursor = busy.EndTime
		}
	}
	if cursor.Before(windowEnd) {
		free = append(free, TimeSlot{Start: cursor, End: windowEnd})
	}
	return free
}
