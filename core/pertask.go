package core

import (
	"context"
	"sync"
)

// PerTaskWorker spawns exactly one worker goroutine per input, starts
// them in input order, and waits for every worker at a single join
// barrier before returning.
//
// There is no bound on simultaneous workers other than the input count
// and no backpressure; callers must bound the input set themselves. A
// failing worker's failure is recorded at its position while the other
// workers run to completion.
type PerTaskWorker[I, O any] struct{}

var _ Strategy[int, int] = PerTaskWorker[int, int]{}

func (PerTaskWorker[I, O]) Name() string {
	return string(StrategyPerTask)
}

func (PerTaskWorker[I, O]) Run(ctx context.Context, fn Task[I, O], inputs []I) ([]Outcome[O], error) {
	outcomes := make([]Outcome[O], len(inputs))

	var wg sync.WaitGroup
	for i, input := range inputs {
		unit := Unit[I, O]{Fn: fn, Input: input, Index: i}
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each worker owns exactly one slot; the WaitGroup
			// provides the happens-before edge for the reads below.
			outcomes[unit.Index] = unit.run(ctx)
		}()
	}
	wg.Wait()

	return outcomes, nil
}
