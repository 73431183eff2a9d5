package multiproc_test

import (
	"context"
	"fmt"

	multiproc "github.com/steliosot/multiprocessing-threads"
)

// ExampleRun demonstrates comparing a batch under the fixed pool with
// a single import.
func ExampleRun() {
	square := func(ctx context.Context, n int) (int, error) {
		return n * n, nil
	}

	result, err := multiproc.Run(context.Background(), square,
		[]int{1, 2, 3, 4}, multiproc.StrategyPool, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Values())

	// Output:
	// [1 4 9 16]
}

// ExampleExecute demonstrates a harness shared across strategy runs.
func ExampleExecute() {
	square := func(ctx context.Context, n int) (int, error) {
		return n * n, nil
	}

	h := multiproc.NewHarness()
	for _, tag := range []multiproc.StrategyTag{
		multiproc.StrategySerial,
		multiproc.StrategyPool,
	} {
		result, err := multiproc.Execute(context.Background(), h, multiproc.Request[int, int]{
			Fn:       square,
			Inputs:   []int{1, 2, 3, 4},
			Strategy: tag,
			Workers:  2,
		})
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(tag, result.Values())
	}

	// Output:
	// serial [1 4 9 16]
	// pool [1 4 9 16]
}
