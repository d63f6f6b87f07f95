package domain

import (
	"sort"
	"time"
)

// noDeadlineRank is the fixed large sentinel used for deadline-less tasks,
// larger than any realistic deadline_rank so they sort after every
// deadlined task.
const noDeadlineRank = 999_999_999

// rankKey is the lexicographic sort key: (deadlineRank, priority, -duration).
type rankKey struct {
	deadlineRank int
	priority     int
	negDuration  int
}

func (k rankKey) less(other rankKey) bool {
	if k.deadlineRank != other.deadlineRank {
		return k.deadlineRank < other.deadlineRank
	}
	if k.priority != other.priority {
		return k.priority < other.priority
	}
	return k.negDuration < other.negDuration
}

func sortKey(t SchedulableTask, now time.Time) rankKey {
	deadlineRank := noDeadlineRank
	if t.Deadline != nil {
		deadlineRank = int(t.Deadline.Sub(now).Minutes())
	}
	return rankKey{deadlineRank: deadlineRank, priority: t.Priority, negDuration: -t.Duration}
}

// RankTasks totally orders tasks by (deadline_rank, priority, -duration),
// ascending on each component. The sort is stable, though no scheduling
// behavior depends on the order of equal keys.
func RankTasks(tasks []SchedulableTask, now time.Time) []SchedulableTask {
	ranked := make([]SchedulableTask, len(tasks))
	copy(ranked, tasks)
	sort.SliceStable(ranked, func(i, j int) bool {
		return sortKey(ranked[i], now).less(sortKey(ranked[j], now))
	})
	return ranked
}
