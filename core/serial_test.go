package core_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	core "github.com/steliosot/multiprocessing-threads/core"
)

func squareTask(ctx context.Context, n int) (int, error) {
	return n * n, nil
}

// failOn returns a task that squares its input but fails on one value.
func failOn(bad int) core.Task[int, int] {
	return func(ctx context.Context, n int) (int, error) {
		if n == bad {
			return 0, fmt.Errorf("refusing input %d", n)
		}
		return n * n, nil
	}
}

// TestSerial_OrderAndValues verifies the baseline squared-inputs scenario
// Given: inputs [1,2,3,4] and a squaring task
// When: run under Serial
// Then: outcomes are [1,4,9,16] in input order
func TestSerial_OrderAndValues(t *testing.T) {
	outcomes, err := core.Serial[int, int]{}.Run(context.Background(), squareTask, []int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	want := []int{1, 4, 9, 16}
	if len(outcomes) != len(want) {
		t.Fatalf("len(outcomes) = %d, want %d", len(outcomes), len(want))
	}
	for i, w := range want {
		if !outcomes[i].OK() {
			t.Errorf("outcomes[%d].Status = %v, want ok", i, outcomes[i].Status)
		}
		if outcomes[i].Value != w {
			t.Errorf("outcomes[%d].Value = %d, want %d", i, outcomes[i].Value, w)
		}
	}
}

// TestSerial_FailFast verifies fail-fast semantics
// Given: inputs [1,2,3,4] and a task that fails on 3
// When: run under Serial
// Then: positions 1-2 hold values, position 3 the failure, position 4 is
// marked not-attempted, and the failure is returned
func TestSerial_FailFast(t *testing.T) {
	outcomes, err := core.Serial[int, int]{}.Run(context.Background(), failOn(3), []int{1, 2, 3, 4})
	if err == nil {
		t.Fatal("Run() error = nil, want task failure")
	}

	var taskErr *core.TaskError
	if !errors.As(err, &taskErr) {
		t.Fatalf("Run() error = %T, want *TaskError", err)
	}
	if taskErr.Index != 2 {
		t.Errorf("TaskError.Index = %d, want 2", taskErr.Index)
	}

	if len(outcomes) != 4 {
		t.Fatalf("len(outcomes) = %d, want 4", len(outcomes))
	}
	if !outcomes[0].OK() || outcomes[0].Value != 1 {
		t.Errorf("outcomes[0] = %+v, want ok with value 1", outcomes[0])
	}
	if !outcomes[1].OK() || outcomes[1].Value != 4 {
		t.Errorf("outcomes[1] = %+v, want ok with value 4", outcomes[1])
	}
	if outcomes[2].Status != core.StatusFailed {
		t.Errorf("outcomes[2].Status = %v, want failed", outcomes[2].Status)
	}
	if outcomes[3].Status != core.StatusNotAttempted {
		t.Errorf("outcomes[3].Status = %v, want not_attempted", outcomes[3].Status)
	}
}

// TestSerial_EmptyInputs verifies the empty batch edge case
// Given: no inputs
// When: run under Serial
// Then: empty outcomes, no error
func TestSerial_EmptyInputs(t *testing.T) {
	outcomes, err := core.Serial[int, int]{}.Run(context.Background(), squareTask, nil)
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if len(outcomes) != 0 {
		t.Errorf("len(outcomes) = %d, want 0", len(outcomes))
	}
}

// TestSerial_ExecutionOrder verifies strict input-order execution
// Given: a task that records the order it sees inputs
// When: run under Serial
// Then: execution order equals input order
func TestSerial_ExecutionOrder(t *testing.T) {
	var seen []int
	record := func(ctx context.Context, n int) (int, error) {
		seen = append(seen, n)
		return n, nil
	}

	inputs := []int{5, 3, 8, 1, 9}
	if _, err := (core.Serial[int, int]{}).Run(context.Background(), record, inputs); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	if len(seen) != len(inputs) {
		t.Fatalf("len(seen) = %d, want %d", len(seen), len(inputs))
	}
	for i, n := range inputs {
		if seen[i] != n {
			t.Errorf("seen[%d] = %d, want %d", i, seen[i], n)
		}
	}
}

// TestSerial_PanicCaptured verifies panic capture
// Given: a task that panics on one input
// When: run under Serial
// Then: the panic is converted into a failed outcome at its position
func TestSerial_PanicCaptured(t *testing.T) {
	boom := func(ctx context.Context, n int) (int, error) {
		if n == 2 {
			panic("boom")
		}
		return n, nil
	}

	outcomes, err := core.Serial[int, int]{}.Run(context.Background(), boom, []int{1, 2, 3})
	if err == nil {
		t.Fatal("Run() error = nil, want panic failure")
	}

	var taskErr *core.TaskError
	if !errors.As(err, &taskErr) {
		t.Fatalf("Run() error = %T, want *TaskError", err)
	}
	if !taskErr.Panicked {
		t.Error("TaskError.Panicked = false, want true")
	}
	if len(taskErr.Stack()) == 0 {
		t.Error("TaskError.Stack() is empty, want a captured stack trace")
	}
	if outcomes[2].Status != core.StatusNotAttempted {
		t.Errorf("outcomes[2].Status = %v, want not_attempted", outcomes[2].Status)
	}
}
