// Package persistence implements domain.ScheduleRepository against the
// driver-agnostic database.Connection abstraction, so the same repository
// serves both the PostgreSQL and SQLite backends the config layer can
// select at startup.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/chrono/internal/scheduling/domain"
	"github.com/felixgeelhaar/chrono/internal/shared/infrastructure/database"
	"github.com/google/uuid"
)

// ErrScheduleNotFound is returned when a lookup or delete targets a
// schedule that does not exist.
var ErrScheduleNotFound = errors.New("schedule not found")

// ScheduleRepository implements domain.ScheduleRepository against any
// database.Connection. Save participates in an ambient transaction if the
// context carries one (via database.WithTx), otherwise it opens and
// commits its own.
type ScheduleRepository struct {
	conn database.Connection
	q    queries
}

// NewScheduleRepository builds a repository bound to conn, selecting the
// SQL dialect (placeholder style) from conn.Driver().
func NewScheduleRepository(conn database.Connection) *ScheduleRepository {
	return &ScheduleRepository{conn: conn, q: queriesFor(conn.Driver())}
}

type scheduleRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ScheduleDate time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type timeBlockRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ScheduleID  uuid.UUID
	BlockType   string
	TaskID      int
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Completed   bool
	Missed      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Save upserts the schedule row and replaces its time blocks wholesale.
func (r *ScheduleRepository) Save(ctx context.Context, schedule *domain.Schedule) error {
	if database.TxFromContext(ctx) != nil {
		return r.save(ctx, database.ExecutorFromContext(ctx, r.conn), schedule)
	}

	tx, err := r.conn.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := r.save(ctx, tx, schedule); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ScheduleRepository) save(ctx context.Context, exec database.Executor, schedule *domain.Schedule) error {
	if _, err := exec.Exec(ctx, r.q.upsertSchedule,
		schedule.ID(), schedule.UserID(), schedule.Date(), schedule.CreatedAt(), schedule.UpdatedAt(),
	); err != nil {
		return err
	}

	if _, err := exec.Exec(ctx, r.q.deleteTimeBlocksByScheduleID, schedule.ID()); err != nil {
		return err
	}

	for _, block := range schedule.Blocks() {
		if _, err := exec.Exec(ctx, r.q.insertTimeBlock,
			block.ID(), block.UserID(), block.ScheduleID(), string(block.BlockType()), block.TaskID(),
			block.Title(), block.Description(), block.StartTime(), block.EndTime(),
			block.IsCompleted(), block.IsMissed(), block.CreatedAt(), block.UpdatedAt(),
		); err != nil {
			return err
		}
	}

	return nil
}

// FindByID retrieves a schedule and its time blocks by id. A missing
// schedule returns (nil, nil), matching the teacher's not-found convention
// for single-row lookups.
func (r *ScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Schedule, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)

	var row scheduleRow
	err := exec.QueryRow(ctx, r.q.selectScheduleByID, id).Scan(
		&row.ID, &row.UserID, &row.ScheduleDate, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	blocks, err := r.loadTimeBlocks(ctx, exec, row.ID)
	if err != nil {
		return nil, err
	}
	return rowToSchedule(row, blocks), nil
}

// FindByUserAndDate finds a user's schedule for a specific calendar date.
func (r *ScheduleRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.Schedule, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var row scheduleRow
	err := exec.QueryRow(ctx, r.q.selectScheduleByUserAndDate, userID, dateOnly).Scan(
		&row.ID, &row.UserID, &row.ScheduleDate, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	blocks, err := r.loadTimeBlocks(ctx, exec, row.ID)
	if err != nil {
		return nil, err
	}
	return rowToSchedule(row, blocks), nil
}

// FindByUserDateRange finds all of a user's schedules within [startDate, endDate].
func (r *ScheduleRepository) FindByUserDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*domain.Schedule, error) {
	exec := database.ExecutorFromContext(ctx, r.conn)
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)

	rows, err := exec.Query(ctx, r.q.selectSchedulesByUserDateRange, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		var row scheduleRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.ScheduleDate, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		blocks, err := r.loadTimeBlocks(ctx, exec, row.ID)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, rowToSchedule(row, blocks))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return schedules, nil
}

// Delete removes a schedule; its time blocks cascade via the schema's
// foreign key.
func (r *ScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	exec := database.ExecutorFromContext(ctx, r.conn)
	result, err := exec.Exec(ctx, r.q.deleteSchedule, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepository) loadTimeBlocks(ctx context.Context, exec database.Executor, scheduleID uuid.UUID) ([]*domain.TimeBlock, error) {
	rows, err := exec.Query(ctx, r.q.selectTimeBlocksByScheduleID, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blocks := make([]*domain.TimeBlock, 0)
	for rows.Next() {
		var row timeBlockRow
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.ScheduleID, &row.BlockType, &row.TaskID,
			&row.Title, &row.Description, &row.StartTime, &row.EndTime,
			&row.Completed, &row.Missed, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, err
		}

		blocks = append(blocks, domain.RehydrateTimeBlock(
			row.ID, row.UserID, row.ScheduleID, domain.BlockType(row.BlockType), row.TaskID,
			row.Title, row.Description, row.StartTime, row.EndTime,
			row.Completed, row.Missed, row.CreatedAt, row.UpdatedAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return blocks, nil
}

func rowToSchedule(row scheduleRow, blocks []*domain.TimeBlock) *domain.Schedule {
	return domain.RehydrateSchedule(row.ID, row.UserID, row.ScheduleDate, blocks, row.CreatedAt, row.UpdatedAt)
}
