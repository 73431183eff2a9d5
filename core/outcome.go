package core

import (
	"time"

	"github.com/google/uuid"
)

// OutcomeStatus describes what happened to a single task position.
type OutcomeStatus int

const (
	// StatusNotAttempted: the task was never started. Only Serial
	// produces this, for positions after a fail-fast stop. It is the
	// zero value so freshly allocated outcome slices start as
	// not-attempted until a strategy fills them in.
	StatusNotAttempted OutcomeStatus = iota

	// StatusOK: the task ran and produced a value.
	StatusOK

	// StatusFailed: the task ran and returned an error or panicked.
	StatusFailed
)

// String returns a stable label for the status, used in logs and metrics.
func (s OutcomeStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFailed:
		return "failed"
	case StatusNotAttempted:
		return "not_attempted"
	default:
		return "unknown"
	}
}

// Outcome is the per-position result of a batch: either a produced value
// or a captured failure. An input position is never silently dropped.
type Outcome[O any] struct {
	Status OutcomeStatus
	Value  O
	Err    error
}

// OK reports whether the task produced a value.
func (o Outcome[O]) OK() bool {
	return o.Status == StatusOK
}

// Result is what the harness returns for one batch execution: the ordered
// outcomes plus wall-clock timing. Outcome order always matches input
// order regardless of the completion order inside a strategy.
type Result[O any] struct {
	RunID    uuid.UUID
	Strategy StrategyTag
	Workers  int
	Outcomes []Outcome[O]
	Elapsed  time.Duration
}

// Values returns the produced values in input order. Positions that did
// not produce a value carry the zero value of O; check Outcomes for the
// per-position status when failures are possible.
func (r Result[O]) Values() []O {
	values := make([]O, len(r.Outcomes))
	for i, o := range r.Outcomes {
		values[i] = o.Value
	}
	return values
}

// FailedCount returns how many positions failed.
func (r Result[O]) FailedCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			n++
		}
	}
	return n
}
