// Package cache provides a Redis-backed cache for materialized weekly
// availability, grounded on internal/orbit/api/storage.go's namespaced-key
// Redis pattern. Caching here is strictly an optimization: a nil cache, a
// nil client, or any Redis error always falls back to materializing
// directly, never blocking or corrupting a scheduling run.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/chrono/internal/scheduling/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// redisClient is the subset of *redis.Client the cache needs, accepted as
// an interface so tests can substitute a fake without a live server.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
}

// AvailabilityCache caches one week's materialized domain.AvailableSlots,
// keyed by (userID, zone, weekAnchor, availabilityVersion). A nil
// *AvailabilityCache is legal and disables caching entirely.
type AvailabilityCache struct {
	client redisClient
	ttl    time.Duration
	logger *slog.Logger
}

// DefaultTTL is short enough that a user's availability template edit is
// reflected well within a single scheduling session.
const DefaultTTL = 5 * time.Minute

// NewAvailabilityCache builds a cache around client. A nil client disables
// caching (every call falls through to materializing) while still letting
// callers hold a non-nil *AvailabilityCache.
func NewAvailabilityCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *AvailabilityCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	var rc redisClient
	if client != nil {
		rc = client
	}
	return &AvailabilityCache{client: rc, ttl: ttl, logger: logger}
}

// NewAvailabilityCacheWithClient builds a cache around any redisClient
// implementation, for tests that substitute a fake in place of a live
// *redis.Client.
func NewAvailabilityCacheWithClient(client redisClient, ttl time.Duration, logger *slog.Logger) *AvailabilityCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AvailabilityCache{client: client, ttl: ttl, logger: logger}
}

// key namespaces entries as chrono:availability:{user}:{zone}:{weekAnchorUnix}:{version},
// mirroring the orbit:{orbit_id}:user:{user_id}:{key} scheme.
func key(userID uuid.UUID, zone string, weekAnchor time.Time, availabilityVersion int) string {
	return fmt.Sprintf("chrono:availability:%s:%s:%d:%d", userID, zone, weekAnchor.Unix(), availabilityVersion)
}

// GetOrMaterialize returns the materialized week for weekAnchor, consulting
// the cache first. A cache miss, a nil cache/client, or any Redis error
// always falls back to domain.MaterializeWeek; the result is written
// through on a successful materialization from a miss.
func (c *AvailabilityCache) GetOrMaterialize(
	ctx context.Context,
	userID uuid.UUID,
	availability domain.WeeklyAvailability,
	weekAnchor time.Time,
	busyIntervals []domain.BusyInterval,
	zone string,
	availabilityVersion int,
) domain.AvailableSlots {
	if c == nil || c.client == nil {
		return domain.MaterializeWeek(availability, weekAnchor, busyIntervals, zone)
	}

	k := key(userID, zone, weekAnchor, availabilityVersion)
	if slots, ok := c.get(ctx, k); ok {
		return slots
	}

	slots := domain.MaterializeWeek(availability, weekAnchor, busyIntervals, zone)
	c.set(ctx, k, slots)
	return slots
}

func (c *AvailabilityCache) get(ctx context.Context, k string) (domain.AvailableSlots, bool) {
	raw, err := c.client.Get(ctx, k).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("availability cache read failed", "error", err)
		}
		return domain.AvailableSlots{}, false
	}

	var slots domain.AvailableSlots
	if err := json.Unmarshal(raw, &slots); err != nil {
		c.logger.Warn("availability cache entry corrupt", "error", err)
		return domain.AvailableSlots{}, false
	}
	return slots, true
}

func (c *AvailabilityCache) set(ctx context.Context, k string, slots domain.AvailableSlots) {
	raw, err := json.Marshal(slots)
	if err != nil {
		c.logger.Warn("availability cache encode failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, k, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("availability cache write failed", "error", err)
	}
}
