// Package multiproc compares execution strategies for batches of
// independent tasks: running them sequentially or concurrently across
// multiple workers, and measuring the wall-clock cost of each choice.
//
// # Quick Start
//
// Build a request and hand it to a harness:
//
//	h := multiproc.NewHarness()
//	result, err := multiproc.Execute(ctx, h, multiproc.Request[int, int]{
//		Fn: func(ctx context.Context, n int) (int, error) {
//			return n * n, nil
//		},
//		Inputs:   []int{1, 2, 3, 4},
//		Strategy: multiproc.StrategyPool,
//		Workers:  2,
//	})
//
// result.Values() is [1 4 9 16] in input order, and result.Elapsed holds
// the measured duration of the whole batch.
//
// # Key Concepts
//
// Task: a pure single-input, single-output function. Tasks share no
// mutable state; the harness hands each one exactly one input value.
//
// Strategy: the policy scheduling a batch of tasks. Serial runs them in
// order on the calling goroutine and stops at the first failure.
// PerTaskWorker spawns one goroutine per input with no concurrency
// bound. FixedPool drains a shared queue with a bounded set of workers.
// The concurrent strategies isolate failures per position; every input
// position always comes back with a value, a captured failure, or an
// explicit not-attempted marker.
//
// Harness: the single entry point. It validates the request, selects the
// strategy, wraps the run in timing instrumentation, and records the run
// for observability. The core never prints; callers decide how to report.
//
// # Ordering
//
// Dispatch order is always input order. Completion order across workers
// is unspecified. Result order is always input order, for every strategy.
//
// For more details, see https://github.com/steliosot/multiprocessing-threads
package multiproc
