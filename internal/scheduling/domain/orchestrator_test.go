package domain_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/chrono/internal/scheduling/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 3, 9, 15, 0, 0, time.UTC)
}

func window(startHour, startMin, endHour, endMin int) domain.DailyWindow {
	return domain.DailyWindow{Start: wallTime(startHour, startMin), End: wallTime(endHour, endMin)}
}

func TestScheduleAt_S1_SingleFittingTask(t *testing.T) {
	availability := domain.NewWeeklyAvailability(1, map[domain.Weekday][]domain.DailyWindow{
		domain.Monday: {window(9, 0, 17, 0)},
	})
	tasks := []domain.SchedulableTask{{ID: 1, Duration: 60, Priority: 2}}

	resp, err := domain.ScheduleAt(tasks, nil, availability, domain.DefaultSchedulingConfig(), fixedNow())

	require.NoError(t, err)
	require.Len(t, resp.ScheduleBlocks, 1)
	assert.Equal(t, at(9, 30), resp.ScheduleBlocks[0].Start)
	assert.Equal(t, at(10, 30), resp.ScheduleBlocks[0].End)
	assert.Empty(t, resp.Warnings)
}

func TestScheduleAt_S2_BusyForcesLaterSlot(t *testing.T) {
	availability := domain.NewWeeklyAvailability(1, map[domain.Weekday][]domain.DailyWindow{
		domain.Monday: {window(9, 0, 17, 0)},
	})
	tasks := []domain.SchedulableTask{{ID: 1, Duration: 60}}
	busy := []domain.BusyInterval{{StartTime: at(10, 0), EndTime: at(11, 0)}}
	config := domain.DefaultSchedulingConfig()
	config.AllowSplitting = false

	resp, err := domain.ScheduleAt(tasks, busy, availability, config, fixedNow())

	require.NoError(t, err)
	require.Len(t, resp.ScheduleBlocks, 1)
	assert.Equal(t, at(11, 0), resp.ScheduleBlocks[0].Start)
	assert.Equal(t, at(12, 0), resp.ScheduleBlocks[0].End)
	assert.Empty(t, resp.Warnings)
}

func TestScheduleAt_S3_SplittingAcrossTwoDays(t *testing.T) {
	availability := domain.NewWeeklyAvailability(1, map[domain.Weekday][]domain.DailyWindow{
		domain.Monday:  {window(9, 0, 10, 0)},
		domain.Tuesday: {window(9, 0, 10, 0)},
	})
	tasks := []domain.SchedulableTask{{ID: 1, Duration: 90}}
	config := domain.DefaultSchedulingConfig()
	config.AllowSplitting = true

	resp, err := domain.ScheduleAt(tasks, nil, availability, config, fixedNow())

	require.NoError(t, err)
	require.Len(t, resp.ScheduleBlocks, 2)
	assert.Equal(t, at(9, 30), resp.ScheduleBlocks[0].Start)
	assert.Equal(t, at(10, 0), resp.ScheduleBlocks[0].End)
	assert.Equal(t, time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC), resp.ScheduleBlocks[1].Start)
	assert.Equal(t, time.Date(2024, 6, 4, 10, 0, 0, 0, time.UTC), resp.ScheduleBlocks[1].End)
	assert.Empty(t, resp.Warnings)

	sum := resp.ScheduleBlocks[0].DurationMinutes() + resp.ScheduleBlocks[1].DurationMinutes()
	assert.Equal(t, 90, sum)
}

func TestScheduleAt_S4_NoSplittingSkipAndSeek(t *testing.T) {
	availability := domain.NewWeeklyAvailability(1, map[domain.Weekday][]domain.DailyWindow{
		domain.Monday: {window(9, 0, 10, 0)},
	})
	taskA := domain.SchedulableTask{ID: 1, Duration: 90, Priority: 2}
	taskB := domain.SchedulableTask{ID: 2, Duration: 30, Priority: 2}
	config := domain.DefaultSchedulingConfig()
	config.AllowSplitting = false

	resp, err := domain.ScheduleAt([]domain.SchedulableTask{taskA, taskB}, nil, availability, config, fixedNow())

	require.NoError(t, err)
	require.Len(t, resp.ScheduleBlocks, 1)
	assert.Equal(t, 2, resp.ScheduleBlocks[0].TaskID)
	assert.Equal(t, at(9, 30), resp.ScheduleBlocks[0].Start)
	assert.Equal(t, at(10, 0), resp.ScheduleBlocks[0].End)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, 1, resp.Warnings[0].ID)
}

func TestScheduleAt_S5_DeadlineBeatsPriority(t *testing.T) {
	availability := domain.NewWeeklyAvailability(1, map[domain.Weekday][]domain.DailyWindow{
		domain.Monday: {window(9, 0, 17, 0)},
	})
	deadlineB := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
	taskA := domain.SchedulableTask{ID: 1, Duration: 60, Priority: 0}
	taskB := domain.SchedulableTask{ID: 2, Duration: 60, Priority: 4, Deadline: &deadlineB}

	resp, err := domain.ScheduleAt([]domain.SchedulableTask{taskA, taskB}, nil, availability, domain.DefaultSchedulingConfig(), fixedNow())

	require.NoError(t, err)
	require.Len(t, resp.ScheduleBlocks, 2)
	assert.Equal(t, 2, resp.ScheduleBlocks[0].TaskID)
	assert.Equal(t, at(9, 30), resp.ScheduleBlocks[0].Start)
	assert.Equal(t, at(10, 30), resp.ScheduleBlocks[0].End)
	assert.Equal(t, 1, resp.ScheduleBlocks[1].TaskID)
	assert.Equal(t, at(10, 30), resp.ScheduleBlocks[1].Start)
	assert.Equal(t, at(11, 30), resp.ScheduleBlocks[1].End)
	assert.Empty(t, resp.Warnings)
}

func TestScheduleAt_S6_TimezoneShift(t *testing.T) {
	availability := domain.NewWeeklyAvailability(1, map[domain.Weekday][]domain.DailyWindow{
		domain.Monday: {window(9, 0, 12, 0)},
	})
	tasks := []domain.SchedulableTask{{ID: 1, Duration: 60}}
	config := domain.DefaultSchedulingConfig()
	config.Timezone = "America/New_York"

	resp, err := domain.ScheduleAt(tasks, nil, availability, config, fixedNow())

	require.NoError(t, err)
	require.Len(t, resp.ScheduleBlocks, 1)
	assert.Equal(t, time.Date(2024, 6, 3, 13, 0, 0, 0, time.UTC), resp.ScheduleBlocks[0].Start)
	assert.Equal(t, time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC), resp.ScheduleBlocks[0].End)
	assert.Empty(t, resp.Warnings)
}

func TestScheduleAt_EmptyTasksYieldsEmptyResponse(t *testing.T) {
	availability := domain.NewWeeklyAvailability(1, nil)

	resp, err := domain.ScheduleAt(nil, nil, availability, domain.DefaultSchedulingConfig(), fixedNow())

	require.NoError(t, err)
	assert.Empty(t, resp.ScheduleBlocks)
	assert.Empty(t, resp.Warnings)
}

func TestScheduleAt_EmptyAvailabilityYieldsAllWarnings(t *testing.T) {
	availability := domain.NewWeeklyAvailability(1, nil)
	tasks := []domain.SchedulableTask{{ID: 1, Duration: 30}, {ID: 2, Duration: 45}}
	config := domain.DefaultSchedulingConfig()
	config.MaxSchedulingWeeks = 1

	resp, err := domain.ScheduleAt(tasks, nil, availability, config, fixedNow())

	require.NoError(t, err)
	assert.Empty(t, resp.ScheduleBlocks)
	assert.Len(t, resp.Warnings, 2)
}

func TestScheduleAt_InvalidConfigReturnsError(t *testing.T) {
	availability := domain.NewWeeklyAvailability(1, nil)
	tasks := []domain.SchedulableTask{{ID: 1, Duration: 30}}
	config := domain.SchedulingConfig{MaxSchedulingWeeks: 0}

	_, err := domain.ScheduleAt(tasks, nil, availability, config, fixedNow())

	assert.Error(t, err)
}

// The non-overlap/ordering check runs against the S5 scenario output, which
// has two same-slot blocks with a rank ordering (deadline beats priority).

func TestScheduleAt_Invariant_NonOverlapAndOrdering(t *testing.T) {
	availability := domain.NewWeeklyAvailability(1, map[domain.Weekday][]domain.DailyWindow{
		domain.Monday: {window(9, 0, 17, 0)},
	})
	deadlineB := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
	taskA := domain.SchedulableTask{ID: 1, Duration: 60, Priority: 0}
	taskB := domain.SchedulableTask{ID: 2, Duration: 60, Priority: 4, Deadline: &deadlineB}

	resp, err := domain.ScheduleAt([]domain.SchedulableTask{taskA, taskB}, nil, availability, domain.DefaultSchedulingConfig(), fixedNow())
	require.NoError(t, err)

	for i := 1; i < len(resp.ScheduleBlocks); i++ {
		prev := resp.ScheduleBlocks[i-1]
		curr := resp.ScheduleBlocks[i]
		assert.True(t, !curr.Start.Before(prev.Start), "blocks must be non-decreasing in start time")
		assert.True(t, prev.End.Equal(curr.Start) || prev.End.Before(curr.Start), "blocks must not overlap")
	}
}

func TestScheduleAt_Invariant_BusyExclusion(t *testing.T) {
	availability := domain.NewWeeklyAvailability(1, map[domain.Weekday][]domain.DailyWindow{
		domain.Monday: {window(9, 0, 17, 0)},
	})
	tasks := []domain.SchedulableTask{{ID: 1, Duration: 360}}
	busy := []domain.BusyInterval{{StartTime: at(11, 0), EndTime: at(12, 0)}}
	config := domain.DefaultSchedulingConfig()
	config.AllowSplitting = true

	resp, err := domain.ScheduleAt(tasks, busy, availability, config, fixedNow())
	require.NoError(t, err)

	for _, b := range resp.ScheduleBlocks {
		for _, bu := range busy {
			excluded := !b.End.After(bu.StartTime) || !bu.EndTime.After(b.Start)
			assert.True(t, excluded, "block %+v must not overlap busy interval %+v", b, bu)
		}
	}
}

func TestScheduleAt_Invariant_DurationConservationNoSplitting(t *testing.T) {
	availability := domain.NewWeeklyAvailability(1, map[domain.Weekday][]domain.DailyWindow{
		domain.Monday: {window(9, 0, 10, 0)},
	})
	tasks := []domain.SchedulableTask{
		{ID: 1, Duration: 90},
		{ID: 2, Duration: 30},
	}
	config := domain.DefaultSchedulingConfig()
	config.AllowSplitting = false

	resp, err := domain.ScheduleAt(tasks, nil, availability, config, fixedNow())
	require.NoError(t, err)

	scheduledMinutes := 0
	for _, b := range resp.ScheduleBlocks {
		scheduledMinutes += b.DurationMinutes()
	}
	warningMinutes := 0
	for _, w := range resp.Warnings {
		warningMinutes += w.Duration
	}
	assert.Equal(t, 120, scheduledMinutes+warningMinutes)
}
