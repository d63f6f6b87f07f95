package domain

import "errors"

// Invariant-violation errors: programmer errors, raised synchronously and
// never swallowed by the core.
var (
	ErrMissingTaskID      = errors.New("scheduling: task missing id")
	ErrInvalidDuration    = errors.New("scheduling: task duration must be between 1 and 480 minutes")
	ErrInvalidPriority    = errors.New("scheduling: task priority must be between 0 and 4")
	ErrMissingBusyBounds  = errors.New("scheduling: busy interval missing start or end")
	ErrInvalidBusyRange   = errors.New("scheduling: busy interval end must be after start")
	ErrInvalidWindowRange = errors.New("scheduling: daily window end must be after start")
	ErrInvalidHorizon     = errors.New("scheduling: max_scheduling_weeks must be positive")
)
