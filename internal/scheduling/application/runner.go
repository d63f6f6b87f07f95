// Package application wires the pure scheduling core to its I/O-bearing
// collaborators: persistence, structured logging, and domain-event
// publishing. The core itself (internal/scheduling/domain) never imports
// this package.
package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/chrono/internal/scheduling/adapter"
	"github.com/felixgeelhaar/chrono/internal/scheduling/domain"
	"github.com/felixgeelhaar/chrono/internal/shared/infrastructure/eventbus"
	"github.com/google/uuid"
)

// availabilityCache is the subset of *cache.AvailabilityCache the Runner
// needs, accepted as an interface so the infrastructure/cache package (which
// already imports domain) never needs to be imported back from here.
type availabilityCache interface {
	GetOrMaterialize(ctx context.Context, userID uuid.UUID, availability domain.WeeklyAvailability, weekAnchor time.Time, busyIntervals []domain.BusyInterval, zone string, availabilityVersion int) domain.AvailableSlots
}

// Runner executes one scheduling run end to end: convert persisted inputs,
// invoke the pure core, commit the resulting blocks onto a Schedule
// aggregate, persist it, and publish the domain events it recorded.
type Runner struct {
	repo      domain.ScheduleRepository
	publisher eventbus.Publisher
	cache     availabilityCache
	logger    *slog.Logger
}

// NewRunner builds a Runner. A nil publisher defaults to
// eventbus.NoopPublisher, and a nil logger to slog.Default(). A nil cache
// disables availability caching entirely; the run simply materializes every
// week directly, as ScheduleAt would on its own.
func NewRunner(repo domain.ScheduleRepository, publisher eventbus.Publisher, logger *slog.Logger) *Runner {
	return NewRunnerWithCache(repo, publisher, nil, logger)
}

// NewRunnerWithCache is NewRunner with an availability cache injected
// explicitly.
func NewRunnerWithCache(repo domain.ScheduleRepository, publisher eventbus.Publisher, cache availabilityCache, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = eventbus.NewNoopPublisher(logger)
	}
	return &Runner{repo: repo, publisher: publisher, cache: cache, logger: logger}
}

// Input bundles one run's request, in the storage layer's shapes.
type Input struct {
	UserID       uuid.UUID
	Date         time.Time
	Tasks        []adapter.PersistedTask
	ScheduleItems []adapter.PersistedScheduleItem
	Availability  adapter.PersistedWeeklyAvailability
	Config        domain.SchedulingConfig
}

// Run converts Input, invokes the core, commits the output onto a fresh
// Schedule aggregate for in.Date, persists it, and publishes its domain
// events. The returned Schedule is the committed aggregate; resp is the
// core's raw response, useful for surfacing warnings to the caller without
// re-deriving them from the aggregate's blocks.
func (r *Runner) Run(ctx context.Context, in Input) (*domain.Schedule, domain.SchedulingResponse, error) {
	return r.RunAt(ctx, in, domain.NowUTC())
}

// RunAt is Run with the wall clock injected explicitly, mirroring
// domain.ScheduleAt, so tests can pin "now" instead of depending on the
// real clock.
func (r *Runner) RunAt(ctx context.Context, in Input, now time.Time) (*domain.Schedule, domain.SchedulingResponse, error) {
	logger := r.logger.With("operation", "scheduling.run", "user_id", in.UserID.String())

	tasks, err := adapter.ToSchedulableTasks(in.Tasks)
	if err != nil {
		logger.Error("invalid task input", "error", err)
		return nil, domain.SchedulingResponse{}, err
	}

	busy, err := adapter.ToBusyIntervals(in.ScheduleItems)
	if err != nil {
		logger.Error("invalid busy interval input", "error", err)
		return nil, domain.SchedulingResponse{}, err
	}

	availability := adapter.ToWeeklyAvailability(in.Availability)

	resp, err := r.scheduleWithCache(ctx, in.UserID, tasks, busy, availability, in.Config, now)
	if err != nil {
		logger.Error("scheduling run failed", "error", err)
		return nil, domain.SchedulingResponse{}, err
	}

	schedule := domain.NewSchedule(in.UserID, in.Date)
	for _, block := range resp.ScheduleBlocks {
		if _, err := schedule.AddBlock(domain.BlockTypeTask, block.TaskID, block.Title, block.Description, block.Start, block.End); err != nil {
			logger.Error("failed to commit scheduled block", "task_id", block.TaskID, "error", err)
			return nil, domain.SchedulingResponse{}, err
		}
	}
	schedule.AddDomainEvent(domain.NewSchedulingCompleted(schedule.ID(), len(resp.ScheduleBlocks), len(resp.Warnings)))

	if err := r.repo.Save(ctx, schedule); err != nil {
		logger.Error("failed to persist schedule", "error", err)
		return nil, domain.SchedulingResponse{}, err
	}

	r.publishEvents(ctx, logger, schedule)

	logger.Info("scheduling run completed",
		"scheduled_count", len(resp.ScheduleBlocks),
		"unscheduled_count", len(resp.Warnings),
	)

	return schedule, resp, nil
}

// availabilityVersion is bumped whenever the cache needs invalidating on an
// availability template edit; there is no such edit path yet, so every run
// in this version uses the same key.
const availabilityVersion = 1

// scheduleWithCache runs the core via ScheduleAtWithMaterializer, binding the
// request's userID into the cache's per-week lookups when a cache is
// configured, or the uncached ScheduleAt otherwise.
func (r *Runner) scheduleWithCache(ctx context.Context, userID uuid.UUID, tasks []domain.SchedulableTask, busy []domain.BusyInterval, availability domain.WeeklyAvailability, config domain.SchedulingConfig, now time.Time) (domain.SchedulingResponse, error) {
	if r.cache == nil {
		return domain.ScheduleAt(tasks, busy, availability, config, now)
	}
	materialize := func(avail domain.WeeklyAvailability, weekAnchor time.Time, busyIntervals []domain.BusyInterval, zone string) domain.AvailableSlots {
		return r.cache.GetOrMaterialize(ctx, userID, avail, weekAnchor, busyIntervals, zone, availabilityVersion)
	}
	return domain.ScheduleAtWithMaterializer(tasks, busy, availability, config, now, materialize)
}

func (r *Runner) publishEvents(ctx context.Context, logger *slog.Logger, schedule *domain.Schedule) {
	events := schedule.DomainEvents()
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			logger.Error("failed to marshal domain event", "routing_key", event.RoutingKey(), "error", err)
			continue
		}
		if err := r.publisher.Publish(ctx, event.RoutingKey(), payload); err != nil {
			logger.Error("failed to publish domain event", "routing_key", event.RoutingKey(), "error", err)
		}
	}
	schedule.ClearDomainEvents()
}
