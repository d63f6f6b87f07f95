package adapter

import "errors"

// ErrMissingTaskID is raised when a PersistedTask reaches the adapter
// without an id. The core treats this as a programming error: the
// persistence layer must never return a row without its primary key.
var ErrMissingTaskID = errors.New("adapter: persisted task is missing an id")

// ErrMissingScheduleItemBounds is raised when a PersistedScheduleItem is
// missing a start or end instant.
var ErrMissingScheduleItemBounds = errors.New("adapter: persisted schedule item is missing start or end")
