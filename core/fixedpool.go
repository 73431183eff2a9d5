package core

import (
	"context"
	"fmt"
	"sync"
)

// FixedPool runs a bounded set of long-lived workers that drain a shared
// job queue and send results back over a results channel keyed by the
// original input position. Workers never touch each other's task state;
// the queue and the results channel are the only shared points.
//
// At most Workers tasks execute concurrently. Every input is processed
// exactly once and the outcomes are assembled into input order before
// Run returns, independent of completion order. A single task's failure
// is recorded at its position and the pool keeps draining the queue.
//
// Workers of 1 reduces to strictly ordered, non-overlapping execution,
// which is useful for measuring pure dispatch overhead against Serial.
// Workers greater than the input count simply leaves excess workers
// idle. Workers live only for the duration of one Run call; there is no
// pooled reuse across calls.
type FixedPool[I, O any] struct {
	Workers int
}

var _ Strategy[int, int] = FixedPool[int, int]{}

func (FixedPool[I, O]) Name() string {
	return string(StrategyPool)
}

// indexedOutcome carries an outcome back to the collector together with
// its input position.
type indexedOutcome[O any] struct {
	index   int
	outcome Outcome[O]
}

func (p FixedPool[I, O]) Run(ctx context.Context, fn Task[I, O], inputs []I) ([]Outcome[O], error) {
	workers := p.Workers
	if workers < 1 {
		return nil, &InvalidRequestError{
			Reason: fmt.Errorf("fixed pool needs a positive worker count, got %d", workers),
		}
	}
	if workers > maxAllowedWorkers {
		return nil, &InvalidRequestError{
			Reason: fmt.Errorf("worker count %d exceeds the allowed maximum %d", workers, maxAllowedWorkers),
		}
	}

	jobs := make(chan Unit[I, O])
	results := make(chan indexedOutcome[O])

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for unit := range jobs {
				results <- indexedOutcome[O]{
					index:   unit.Index,
					outcome: unit.run(ctx),
				}
			}
		}()
	}

	// Feed the queue in input order so dispatch order is deterministic.
	go func() {
		defer close(jobs)
		for i, input := range inputs {
			jobs <- Unit[I, O]{Fn: fn, Input: input, Index: i}
		}
	}()

	// Close the results channel once the last worker exits; ranging over
	// results below is the join barrier that only releases after every
	// task's outcome has been recorded.
	go func() {
		wg.Wait()
		close(results)
	}()

	outcomes := make([]Outcome[O], len(inputs))
	for r := range results {
		outcomes[r.index] = r.outcome
	}
	return outcomes, nil
}
