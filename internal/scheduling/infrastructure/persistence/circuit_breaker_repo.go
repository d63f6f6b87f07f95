package persistence

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/chrono/internal/scheduling/domain"
	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
)

// ErrRepositoryUnavailable is returned by CircuitBreakerRepository.Save
// while its breaker is open, instead of blocking the caller on a wedged
// database.
var ErrRepositoryUnavailable = errors.New("schedule repository unavailable: circuit open")

// CircuitBreakerRepository wraps a domain.ScheduleRepository's Save with a
// gobreaker.CircuitBreaker, grounded on internal/engine/runtime/executor.go's
// per-dependency breaker pattern. Reads pass through unprotected: a reader
// blocked on a slow query degrades that one caller, while a writer retried
// against a down database can cascade into exhausted connections across the
// whole process, which is the failure mode the breaker exists to contain.
type CircuitBreakerRepository struct {
	inner   domain.ScheduleRepository
	breaker *gobreaker.CircuitBreaker[any]
	logger  *slog.Logger
}

// CircuitBreakerConfig configures the breaker guarding Save.
type CircuitBreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// DefaultCircuitBreakerConfig mirrors the engine executor's defaults.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxRequests:      3,
		Interval:         10 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// NewCircuitBreakerRepository wraps inner with a breaker named "schedule_repository.save".
func NewCircuitBreakerRepository(inner domain.ScheduleRepository, config CircuitBreakerConfig, logger *slog.Logger) *CircuitBreakerRepository {
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:        "schedule_repository.save",
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	}

	return &CircuitBreakerRepository{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[any](settings),
		logger:  logger,
	}
}

// Save runs inner.Save through the breaker. An open breaker fails fast
// with ErrRepositoryUnavailable rather than invoking inner at all.
func (r *CircuitBreakerRepository) Save(ctx context.Context, schedule *domain.Schedule) error {
	_, err := r.breaker.Execute(func() (any, error) {
		return nil, r.inner.Save(ctx, schedule)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrRepositoryUnavailable
	}
	return err
}

func (r *CircuitBreakerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Schedule, error) {
	return r.inner.FindByID(ctx, id)
}

func (r *CircuitBreakerRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.Schedule, error) {
	return r.inner.FindByUserAndDate(ctx, userID, date)
}

func (r *CircuitBreakerRepository) FindByUserDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*domain.Schedule, error) {
	return r.inner.FindByUserDateRange(ctx, userID, startDate, endDate)
}

func (r *CircuitBreakerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.inner.Delete(ctx, id)
}
