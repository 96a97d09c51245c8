package domain

import "errors"

// Sentinel errors. Domain errors are pure, with no infrastructure dependency;
// the command layer maps them to user-facing messages and exit codes.

var (
	// Lifecycle errors
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskDone        = errors.New("task is already done")
	ErrNoActiveTask    = errors.New("no active task")
	ErrAmbiguousActive = errors.New("more than one task is active")
	ErrNoPausedTask    = errors.New("no paused task to resume")

	// Interval errors
	ErrIntervalOrder = errors.New("interval would close before it starts")

	// Aggregation errors
	ErrInvalidReportDays = errors.New("report days must be positive")

	// Store errors
	ErrStoreCorrupt = errors.New("store failed validation")
	ErrStoreLocked  = errors.New("store is locked by another process")
)
