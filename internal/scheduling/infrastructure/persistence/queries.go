package persistence

import "github.com/felixgeelhaar/chrono/internal/shared/infrastructure/database"

// queries holds the dialect-specific SQL text for one backend. The two
// drivers differ only in placeholder syntax and upsert clause; the schema
// and column order are identical.
type queries struct {
	upsertSchedule                  string
	deleteTimeBlocksByScheduleID    string
	insertTimeBlock                string
	selectScheduleByID              string
	selectScheduleByUserAndDate     string
	selectSchedulesByUserDateRange  string
	selectTimeBlocksByScheduleID    string
	deleteSchedule                  string
}

func queriesFor(driver database.Driver) queries {
	if driver == database.DriverSQLite {
		return queries{
			upsertSchedule: `
				INSERT INTO schedules (id, user_id, schedule_date, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET updated_at = excluded.updated_at`,
			deleteTimeBlocksByScheduleID: `DELETE FROM time_blocks WHERE schedule_id = ?`,
			insertTimeBlock: `
				INSERT INTO time_blocks (
					id, user_id, schedule_id, block_type, task_id, title, description,
					start_time, end_time, completed, missed, created_at, updated_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			selectScheduleByID: `
				SELECT id, user_id, schedule_date, created_at, updated_at
				FROM schedules WHERE id = ?`,
			selectScheduleByUserAndDate: `
				SELECT id, user_id, schedule_date, created_at, updated_at
				FROM schedules WHERE user_id = ? AND schedule_date = ?`,
			selectSchedulesByUserDateRange: `
				SELECT id, user_id, schedule_date, created_at, updated_at
				FROM schedules WHERE user_id = ? AND schedule_date >= ? AND schedule_date <= ?
				ORDER BY schedule_date`,
			selectTimeBlocksByScheduleID: `
				SELECT id, user_id, schedule_id, block_type, task_id, title, description,
				       start_time, end_time, completed, missed, created_at, updated_at
				FROM time_blocks WHERE schedule_id = ? ORDER BY start_time`,
			deleteSchedule: `DELETE FROM schedules WHERE id = ?`,
		}
	}

	return queries{
		upsertSchedule: `
			INSERT INTO schedules (id, user_id, schedule_date, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET updated_at = EXCLUDED.updated_at`,
		deleteTimeBlocksByScheduleID: `DELETE FROM time_blocks WHERE schedule_id = $1`,
		insertTimeBlock: `
			INSERT INTO time_blocks (
				id, user_id, schedule_id, block_type, task_id, title, description,
				start_time, end_time, completed, missed, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		selectScheduleByID: `
			SELECT id, user_id, schedule_date, created_at, updated_at
			FROM schedules WHERE id = $1`,
		selectScheduleByUserAndDate: `
			SELECT id, user_id, schedule_date, created_at, updated_at
			FROM schedules WHERE user_id = $1 AND schedule_date = $2`,
		selectSchedulesByUserDateRange: `
			SELECT id, user_id, schedule_date, created_at, updated_at
			FROM schedules WHERE user_id = $1 AND schedule_date >= $2 AND schedule_date <= $3
			ORDER BY schedule_date`,
		selectTimeBlocksByScheduleID: `
			SELECT id, user_id, schedule_id, block_type, task_id, title, description,
			       start_time, end_time, completed, missed, created_at, updated_at
			FROM time_blocks WHERE schedule_id = $1 ORDER BY start_time`,
		deleteSchedule: `DELETE FROM schedules WHERE id = $1`,
	}
}
