package core

import "context"

// Serial executes every task in input order on the calling goroutine.
// It is the correctness baseline the concurrent strategies are compared
// against: strict input-order execution, no dispatch overhead.
//
// Unlike the concurrent strategies, Serial is fail-fast: the first task
// failure stops the batch. Its position carries the failure and every
// later position stays StatusNotAttempted. This matches plain loop
// semantics and is intentional, not an oversight.
type Serial[I, O any] struct{}

var _ Strategy[int, int] = Serial[int, int]{}

func (Serial[I, O]) Name() string {
	return string(StrategySerial)
}

func (Serial[I, O]) Run(ctx context.Context, fn Task[I, O], inputs []I) ([]Outcome[O], error) {
	outcomes := make([]Outcome[O], len(inputs))
	for i, input := range inputs {
		out := Unit[I, O]{Fn: fn, Input: input, Index: i}.run(ctx)
		outcomes[i] = out
		if out.Status == StatusFailed {
			return outcomes, out.Err
		}
	}
	return outcomes, nil
}
