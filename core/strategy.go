package core

import (
	"context"
	"fmt"
	"strings"
)

// StrategyTag selects an execution strategy by name. Tags are stable
// strings so they can come straight from flags or config files.
type StrategyTag string

const (
	// StrategySerial runs every task in input order on the calling
	// goroutine. Baseline behavior, fail-fast on the first error.
	StrategySerial StrategyTag = "serial"

	// StrategyPerTask spawns one worker goroutine per input with no
	// bound on simultaneous workers. Failures are isolated per position.
	StrategyPerTask StrategyTag = "pertask"

	// StrategyPool runs a fixed-size worker pool draining a shared job
	// queue. Failures are isolated per position.
	StrategyPool StrategyTag = "pool"
)

// ParseStrategyTag normalizes a strategy name from the invocation
// surface. It accepts a few common aliases for each strategy.
func ParseStrategyTag(s string) (StrategyTag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "serial", "sequential":
		return StrategySerial, nil
	case "pertask", "per-task", "spawn":
		return StrategyPerTask, nil
	case "pool", "fixedpool", "fixed-pool":
		return StrategyPool, nil
	default:
		return "", fmt.Errorf("unknown strategy %q", s)
	}
}

// Strategy runs a batch of task units under one scheduling policy.
//
// Contract for every implementation:
//   - the returned slice has exactly len(inputs) outcomes, ordered by
//     input position regardless of completion order
//   - tasks are dispatched in input order; completion order across
//     workers is unspecified
//   - Run blocks until the strategy's final join barrier; there is no
//     mechanism to cancel in-flight tasks
type Strategy[I, O any] interface {
	// Name returns the strategy tag for logs and metrics.
	Name() string

	// Run executes fn over inputs and returns the ordered outcomes.
	// The error is non-nil for strategy-level failures (fail-fast under
	// Serial, invalid worker bound under FixedPool); per-task failures
	// of the isolating strategies live only in the outcomes.
	Run(ctx context.Context, fn Task[I, O], inputs []I) ([]Outcome[O], error)
}

// strategyFor maps a tag to its implementation. workers only applies to
// the fixed pool and must already be resolved to a positive value.
func strategyFor[I, O any](tag StrategyTag, workers int) (Strategy[I, O], error) {
	switch tag {
	case StrategySerial:
		return Serial[I, O]{}, nil
	case StrategyPerTask:
		return PerTaskWorker[I, O]{}, nil
	case StrategyPool:
		return FixedPool[I, O]{Workers: workers}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", tag)
	}
}
