package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/felixgeelhaar/chrono/internal/scheduling/adapter"
	"github.com/felixgeelhaar/chrono/internal/scheduling/domain"
	"github.com/google/uuid"
)

// fixture is the CLI-facing JSON shape for a scheduling run: a task list,
// previously committed busy intervals, a recurring weekly availability
// template, and optional per-run config overrides.
type fixture struct {
	UserID       string            `json:"user_id"`
	Date         string            `json:"date"` // RFC3339 or YYYY-MM-DD
	Tasks        []fixtureTask     `json:"tasks"`
	Busy         []fixtureBusy     `json:"busy"`
	Availability fixtureAvailability `json:"availability"`
	Config       *fixtureConfig    `json:"config"`
}

type fixtureTask struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Deadline    *string `json:"deadline"` // RFC3339, optional
	Priority    int     `json:"priority"`
}

type fixtureBusy struct {
	TaskID *int   `json:"task_id"`
	Start  string `json:"start"` // RFC3339
	End    string `json:"end"`   // RFC3339
	Title  string `json:"title"`
}

type fixtureWindow struct {
	Weekday int    `json:"weekday"` // 0=MON..6=SUN
	Start   string `json:"start"`   // "HH:MM"
	End     string `json:"end"`     // "HH:MM"
}

type fixtureAvailability struct {
	Windows []fixtureWindow `json:"windows"`
}

type fixtureConfig struct {
	MaxSchedulingWeeks *int    `json:"max_scheduling_weeks"`
	AllowSplitting     *bool   `json:"allow_splitting"`
	Timezone           *string `json:"timezone"`
}

func loadFixture(path string) (*fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

// toInput converts the parsed fixture and a set of scheduling defaults into
// the fields of an application.Input (user id, date, tasks, busy items,
// availability, config), returned separately for the caller to assemble.
func (f *fixture) toInput(defaultMaxWeeks int, defaultAllowSplitting bool, defaultTimezone string) (uuid.UUID, time.Time, []adapter.PersistedTask, []adapter.PersistedScheduleItem, adapter.PersistedWeeklyAvailability, domain.SchedulingConfig, error) {
	userID := uuid.New()
	if f.UserID != "" {
		parsed, err := uuid.Parse(f.UserID)
		if err != nil {
			return uuid.UUID{}, time.Time{}, nil, nil, adapter.PersistedWeeklyAvailability{}, domain.SchedulingConfig{}, fmt.Errorf("invalid user_id: %w", err)
		}
		userID = parsed
	}

	date := time.Now().UTC()
	if f.Date != "" {
		parsed, err := parseFlexibleDate(f.Date)
		if err != nil {
			return uuid.UUID{}, time.Time{}, nil, nil, adapter.PersistedWeeklyAvailability{}, domain.SchedulingConfig{}, fmt.Errorf("invalid date: %w", err)
		}
		date = parsed
	}

	tasks := make([]adapter.PersistedTask, 0, len(f.Tasks))
	for _, t := range f.Tasks {
		task := adapter.PersistedTask{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			DurationMin: t.DurationMin,
			Priority:    t.Priority,
		}
		if t.Deadline != nil {
			parsed, err := time.Parse(time.RFC3339, *t.Deadline)
			if err != nil {
				return uuid.UUID{}, time.Time{}, nil, nil, adapter.PersistedWeeklyAvailability{}, domain.SchedulingConfig{}, fmt.Errorf("task %d: invalid deadline: %w", t.ID, err)
			}
			task.Deadline = &parsed
		}
		tasks = append(tasks, task)
	}

	busy := make([]adapter.PersistedScheduleItem, 0, len(f.Busy))
	for _, b := range f.Busy {
		start, err := time.Parse(time.RFC3339, b.Start)
		if err != nil {
			return uuid.UUID{}, time.Time{}, nil, nil, adapter.PersistedWeeklyAvailability{}, domain.SchedulingConfig{}, fmt.Errorf("busy interval: invalid start: %w", err)
		}
		end, err := time.Parse(time.RFC3339, b.End)
		if err != nil {
			return uuid.UUID{}, time.Time{}, nil, nil, adapter.PersistedWeeklyAvailability{}, domain.SchedulingConfig{}, fmt.Errorf("busy interval: invalid end: %w", err)
		}
		busy = append(busy, adapter.PersistedScheduleItem{TaskID: b.TaskID, Start: start, End: end, Title: b.Title})
	}

	windows := make([]adapter.PersistedDailyWindow, 0, len(f.Availability.Windows))
	for _, w := range f.Availability.Windows {
		start, err := parseWallClock(w.Start)
		if err != nil {
			return uuid.UUID{}, time.Time{}, nil, nil, adapter.PersistedWeeklyAvailability{}, domain.SchedulingConfig{}, fmt.Errorf("availability window: invalid start: %w", err)
		}
		end, err := parseWallClock(w.End)
		if err != nil {
			return uuid.UUID{}, time.Time{}, nil, nil, adapter.PersistedWeeklyAvailability{}, domain.SchedulingConfig{}, fmt.Errorf("availability window: invalid end: %w", err)
		}
		windows = append(windows, adapter.PersistedDailyWindow{Weekday: w.Weekday, Start: start, End: end})
	}

	config := domain.SchedulingConfig{
		MaxSchedulingWeeks: defaultMaxWeeks,
		AllowSplitting:     defaultAllowSplitting,
		Timezone:           defaultTimezone,
	}
	if f.Config != nil {
		if f.Config.MaxSchedulingWeeks != nil {
			config.MaxSchedulingWeeks = *f.Config.MaxSchedulingWeeks
		}
		if f.Config.AllowSplitting != nil {
			config.AllowSplitting = *f.Config.AllowSplitting
		}
		if f.Config.Timezone != nil {
			config.Timezone = *f.Config.Timezone
		}
	}

	return userID, date, tasks, busy, adapter.PersistedWeeklyAvailability{OwnerID: 0, Windows: windows}, config, nil
}

func parseFlexibleDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func parseWallClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
