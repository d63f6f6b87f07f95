// Command scheduler is Chrono's CLI entry point: it loads a JSON task and
// availability fixture, runs it through the scheduling core, persists the
// resulting schedule, and prints the computed blocks and warnings.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/felixgeelhaar/chrono/internal/scheduling/application"
	"github.com/felixgeelhaar/chrono/internal/scheduling/domain"
	"github.com/felixgeelhaar/chrono/internal/scheduling/infrastructure/cache"
	"github.com/felixgeelhaar/chrono/internal/scheduling/infrastructure/persistence"
	"github.com/felixgeelhaar/chrono/internal/shared/infrastructure/database"
	_ "github.com/felixgeelhaar/chrono/internal/shared/infrastructure/database/postgres"
	_ "github.com/felixgeelhaar/chrono/internal/shared/infrastructure/database/sqlite"
	"github.com/felixgeelhaar/chrono/pkg/config"
	"github.com/felixgeelhaar/chrono/pkg/observability"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "scheduler",
		Short: "Chrono scheduling core CLI",
	}
	root.AddCommand(newScheduleCmd())
	root.AddCommand(newHealthCmd())
	return root
}

func newScheduleCmd() *cobra.Command {
	sched := &cobra.Command{
		Use:   "schedule",
		Short: "Operate on task schedules",
	}
	sched.AddCommand(newScheduleRunCmd())
	return sched
}

func newScheduleRunCmd() *cobra.Command {
	var inputPath string

	run := &cobra.Command{
		Use:   "run",
		Short: "Run the greedy scheduler over a JSON task/availability fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd.Context(), inputPath)
		},
	}
	run.Flags().StringVarP(&inputPath, "input", "i", "", "path to the JSON fixture (required)")
	_ = run.MarkFlagRequired("input")

	return run
}

func runSchedule(ctx context.Context, inputPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := observability.LoggerFromEnv()

	f, err := loadFixture(inputPath)
	if err != nil {
		return err
	}

	maxWeeks, allowSplitting, timezone := cfg.SchedulingDefaults()
	userID, date, tasks, busy, availability, schedulingConfig, err := f.toInput(maxWeeks, allowSplitting, timezone)
	if err != nil {
		return err
	}

	conn, err := database.NewConnection(ctx, database.Config{
		Driver:     database.Driver(cfg.DatabaseDriver),
		URL:        cfg.DatabaseURL,
		SQLitePath: cfg.SQLitePath,
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer conn.Close()

	baseRepo := persistence.NewScheduleRepository(conn)
	repo := persistence.NewCircuitBreakerRepository(baseRepo, persistence.DefaultCircuitBreakerConfig(), logger)

	availabilityCache := newAvailabilityCache(cfg.RedisURL, logger)
	runner := application.NewRunnerWithCache(repo, nil, availabilityCache, logger)

	schedule, resp, err := runner.Run(ctx, application.Input{
		UserID:       userID,
		Date:         date,
		Tasks:        tasks,
		ScheduleItems: busy,
		Availability: availability,
		Config:       schedulingConfig,
	})
	if err != nil {
		return fmt.Errorf("scheduling run failed: %w", err)
	}

	return printResult(schedule.ID().String(), resp)
}

// newAvailabilityCache builds a Redis-backed availability cache, or a
// cache with a nil client on any connection-setup failure. Either way the
// scheduling run proceeds uncached rather than failing outright, per
// cache.AvailabilityCache's nil-safety guarantee.
func newAvailabilityCache(redisURL string, logger *slog.Logger) *cache.AvailabilityCache {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn("invalid redis url, scheduling runs will be uncached", "error", err)
		return cache.NewAvailabilityCache(nil, 0, logger)
	}
	return cache.NewAvailabilityCache(redis.NewClient(opts), cache.DefaultTTL, logger)
}

type scheduledBlockOutput struct {
	TaskID int    `json:"task_id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type runOutput struct {
	ScheduleID         string                 `json:"schedule_id"`
	Blocks             []scheduledBlockOutput `json:"blocks"`
	UnscheduledTaskIDs []int                  `json:"unscheduled_task_ids"`
}

func printResult(scheduleID string, resp domain.SchedulingResponse) error {
	blocks := make([]scheduledBlockOutput, 0, len(resp.ScheduleBlocks))
	for _, b := range resp.ScheduleBlocks {
		blocks = append(blocks, scheduledBlockOutput{
			TaskID: b.TaskID,
			Title:  b.Title,
			Start:  b.Start.Format(time.RFC3339),
			End:    b.End.Format(time.RFC3339),
		})
	}

	unscheduled := make([]int, 0, len(resp.Warnings))
	for _, t := range resp.Warnings {
		unscheduled = append(unscheduled, t.ID)
	}

	out := runOutput{
		ScheduleID:         scheduleID,
		Blocks:             blocks,
		UnscheduledTaskIDs: unscheduled,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
