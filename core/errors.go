package core

import (
	"errors"
	"fmt"
)

const (
	// maxAllowedWorkers is the ceiling for the worker-count bound.
	// Values higher than this could lead to excessive goroutine creation
	// and memory exhaustion, so they are rejected before any worker is
	// spawned.
	maxAllowedWorkers = 10000
)

// InvalidRequestError is returned when an execution request is rejected
// during validation, before any worker is spawned.
type InvalidRequestError struct {
	Reason error
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid execution request: %v", e.Reason)
}

func (e *InvalidRequestError) Unwrap() error {
	return e.Reason
}

// TaskError records the failure of a single task at a known batch
// position. Panicked marks failures recovered from a panic rather than a
// returned error.
type TaskError struct {
	Index    int
	Panicked bool
	cause    error
	stack    []byte
}

func (e *TaskError) Error() string {
	if e.Panicked {
		return fmt.Sprintf("task %d panicked: %v", e.Index, e.cause)
	}
	return fmt.Sprintf("task %d failed: %v", e.Index, e.cause)
}

func (e *TaskError) Unwrap() error {
	return e.cause
}

// Stack returns the stack trace captured at panic time, or nil for
// ordinary task errors.
func (e *TaskError) Stack() []byte {
	return e.stack
}

// IsInvalidRequest reports whether err is a request validation failure.
func IsInvalidRequest(err error) bool {
	var ir *InvalidRequestError
	return errors.As(err, &ir)
}
