package multiproc

import (
	"context"

	"github.com/steliosot/multiprocessing-threads/core"
)

// Re-export commonly used types from core package for convenience.
// This allows users to import only the multiproc package for most use cases.

// Task is the unit of work: one input in, one output or error out
type Task[I, O any] = core.Task[I, O]

// Request describes one batch execution
type Request[I, O any] = core.Request[I, O]

// Result holds the ordered outcomes and the measured duration
type Result[O any] = core.Result[O]

// Outcome is the per-position result of a batch
type Outcome[O any] = core.Outcome[O]

// OutcomeStatus describes what happened to a single task position
type OutcomeStatus = core.OutcomeStatus

// Harness is the public entry point for batch execution
type Harness = core.Harness

// StrategyTag selects an execution strategy by name
type StrategyTag = core.StrategyTag

// RunRecord captures one completed batch execution
type RunRecord = core.RunRecord

// TaskError records the failure of a single task at a known position
type TaskError = core.TaskError

// InvalidRequestError marks a request rejected during validation
type InvalidRequestError = core.InvalidRequestError

// Strategy constants
const (
	StrategySerial  StrategyTag = core.StrategySerial
	StrategyPerTask StrategyTag = core.StrategyPerTask
	StrategyPool    StrategyTag = core.StrategyPool
)

// Outcome status constants
const (
	StatusNotAttempted OutcomeStatus = core.StatusNotAttempted
	StatusOK           OutcomeStatus = core.StatusOK
	StatusFailed       OutcomeStatus = core.StatusFailed
)

// Convenience functions re-exported from core
var (
	NewHarness       = core.NewHarness
	WithLogger       = core.WithLogger
	WithMetrics      = core.WithMetrics
	ParseStrategyTag = core.ParseStrategyTag
	DefaultWorkers   = core.DefaultWorkers
	Measure          = core.Measure
)

// Execute runs one batch under the requested strategy via the given
// harness. See core.Execute for the full contract.
func Execute[I, O any](ctx context.Context, h *Harness, req Request[I, O]) (Result[O], error) {
	return core.Execute(ctx, h, req)
}

// Run executes one batch on a throwaway harness with no logging or
// metrics. It is the shortest path for one-off comparisons.
func Run[I, O any](ctx context.Context, fn Task[I, O], inputs []I, tag StrategyTag, workers int) (Result[O], error) {
	return core.Execute(ctx, core.NewHarness(), Request[I, O]{
		Fn:       fn,
		Inputs:   inputs,
		Strategy: tag,
		Workers:  workers,
	})
}
