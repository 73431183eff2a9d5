package core

import (
	"context"
	"fmt"
	"runtime/debug"
)

// Task is the unit of work: a pure single-input, single-output function.
// Tasks must not rely on caller-local mutable state; each invocation
// receives exactly one input value and reports its result explicitly.
type Task[I, O any] func(ctx context.Context, input I) (O, error)

// Unit binds a Task to one input value and its position in the batch.
// A Unit is immutable once constructed and consumed exactly once by the
// strategy that runs it.
type Unit[I, O any] struct {
	Fn    Task[I, O]
	Input I
	Index int
}

// run executes the unit and converts its result into an Outcome.
// A panic inside the task is recovered and captured as a failed Outcome
// so a misbehaving task can never take down the harness.
func (u Unit[I, O]) run(ctx context.Context) (out Outcome[O]) {
	defer func() {
		if rec := recover(); rec != nil {
			out = Outcome[O]{
				Status: StatusFailed,
				Err: &TaskError{
					Index:    u.Index,
					Panicked: true,
					cause:    fmt.Errorf("panic: %v", rec),
					stack:    debug.Stack(),
				},
			}
		}
	}()

	value, err := u.Fn(ctx, u.Input)
	if err != nil {
		return Outcome[O]{
			Status: StatusFailed,
			Err:    &TaskError{Index: u.Index, cause: err},
		}
	}
	return Outcome[O]{Status: StatusOK, Value: value}
}
