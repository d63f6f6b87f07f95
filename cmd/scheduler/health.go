package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/chrono/internal/shared/infrastructure/database/postgres"
	"github.com/felixgeelhaar/chrono/pkg/config"
	"github.com/felixgeelhaar/chrono/pkg/observability"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check connectivity to the database, cache, and broker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealth(cmd.Context())
		},
	}
}

// runHealth registers one checker per external collaborator and prints the
// aggregated result. The Postgres checker only runs when the configured
// driver is Postgres; SQLite has no network dependency to probe.
func runHealth(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	registry := observability.NewHealthRegistry()

	if cfg.IsPostgres() {
		pinger, err := postgres.NewHealthPinger(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("opening database health pinger: %w", err)
		}
		defer pinger.Close()
		registry.Register("database", observability.DatabaseHealthChecker(pinger.Ping))
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("parsing redis url: %w", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()
	registry.Register("redis", observability.RedisHealthChecker(func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	}))

	registry.Register("rabbitmq", observability.RabbitMQHealthChecker(func(ctx context.Context) error {
		conn, err := amqp.DialConfig(cfg.RabbitMQURL, amqp.Config{})
		if err != nil {
			return err
		}
		return conn.Close()
	}))

	health := registry.GetOverallHealth(ctx)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(health); err != nil {
		return err
	}
	if health.Status != observability.HealthStatusHealthy {
		os.Exit(1)
	}
	return nil
}
