// Package tasks provides the demonstration workloads fed to the
// execution harness: a sleep-based delay simulation, CPU-bound
// sum-of-squares work, and an HTTP fetch. They are plain stateless
// callables satisfying the core.Task boundary; the harness knows nothing
// about their internals.
package tasks

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/steliosot/multiprocessing-threads/core"
)

// Sleep returns a task that simulates d of blocking work per input and
// reports how long it slept. The input scales the base delay, so a batch
// of [1 2 3] with d=10ms sleeps 10, 20 and 30ms respectively.
func Sleep(d time.Duration) core.Task[int, time.Duration] {
	return func(ctx context.Context, multiplier int) (time.Duration, error) {
		if multiplier < 0 {
			return 0, fmt.Errorf("negative delay multiplier %d", multiplier)
		}
		total := d * time.Duration(multiplier)
		time.Sleep(total)
		return total, nil
	}
}

// SumOfSquares is a CPU-bound task: the sum of i*i for i in [0, n).
func SumOfSquares(ctx context.Context, n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("negative bound %d", n)
	}
	var sum int64
	for i := int64(0); i < n; i++ {
		sum += i * i
	}
	return sum, nil
}

// Square returns the input squared. The smallest useful workload for
// checking result ordering.
func Square(ctx context.Context, n int) (int, error) {
	return n * n, nil
}

// Fetch returns a task that issues an HTTP GET per input URL and reports
// the status code. A nil client falls back to http.DefaultClient.
func Fetch(client *http.Client) core.Task[string, int] {
	if client == nil {
		client = http.DefaultClient
	}
	return func(ctx context.Context, url string) (int, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return 0, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return 0, err
		}
		defer resp.Body.Close()
		return resp.StatusCode, nil
	}
}
