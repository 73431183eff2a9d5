package bench

import (
	"context"
	"net/http"
	"time"

	"github.com/steliosot/multiprocessing-threads/core"
	"github.com/steliosot/multiprocessing-threads/tasks"
)

// Row is one line of a comparison: a scenario run under one strategy.
type Row struct {
	Scenario string
	Strategy core.StrategyTag
	Workers  int
	Tasks    int
	Failed   int
	Elapsed  time.Duration
}

// Runner executes benchmark scenarios through a shared harness.
type Runner struct {
	harness *core.Harness
	client  *http.Client
}

// NewRunner creates a Runner backed by the given harness. A nil harness
// gets a fresh one with no logging or metrics.
func NewRunner(harness *core.Harness) *Runner {
	if harness == nil {
		harness = core.NewHarness()
	}
	return &Runner{
		harness: harness,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Run executes every scenario under each of its strategies and returns
// the comparison rows in config order.
func (r *Runner) Run(ctx context.Context, cfg *Config) ([]Row, error) {
	rows := make([]Row, 0, len(cfg.Scenarios))
	for _, scenario := range cfg.Scenarios {
		for _, tagName := range scenario.Strategies {
			tag, err := core.ParseStrategyTag(tagName)
			if err != nil {
				return rows, err
			}
			row, err := r.runOne(ctx, scenario, tag)
			if err != nil && core.IsInvalidRequest(err) {
				return rows, err
			}
			// Serial fail-fast and per-task failures still produce a
			// row; the comparison reports them as failed positions.
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (r *Runner) runOne(ctx context.Context, scenario Scenario, tag core.StrategyTag) (Row, error) {
	switch scenario.Task {
	case "sleep":
		fn := tasks.Sleep(time.Duration(scenario.SleepMs) * time.Millisecond)
		inputs := make([]int, scenario.Count)
		for i := range inputs {
			inputs[i] = 1
		}
		return run(ctx, r.harness, scenario, tag, fn, inputs)

	case "sumsquares":
		inputs := make([]int64, scenario.Count)
		for i := range inputs {
			inputs[i] = scenario.SumBound
		}
		return run(ctx, r.harness, scenario, tag, core.Task[int64, int64](tasks.SumOfSquares), inputs)

	case "fetch":
		inputs := make([]string, scenario.Count)
		for i := range inputs {
			inputs[i] = scenario.URL
		}
		return run(ctx, r.harness, scenario, tag, tasks.Fetch(r.client), inputs)

	default:
		// Guarded by Config.Validate; kept for direct Runner use.
		return Row{}, &core.InvalidRequestError{
			Reason: unknownTaskError(scenario.Task),
		}
	}
}

func run[I, O any](ctx context.Context, h *core.Harness, scenario Scenario, tag core.StrategyTag, fn core.Task[I, O], inputs []I) (Row, error) {
	result, err := core.Execute(ctx, h, core.Request[I, O]{
		Fn:       fn,
		Inputs:   inputs,
		Strategy: tag,
		Workers:  scenario.Workers,
	})
	return Row{
		Scenario: scenario.Name,
		Strategy: tag,
		Workers:  result.Workers,
		Tasks:    len(result.Outcomes),
		Failed:   result.FailedCount(),
		Elapsed:  result.Elapsed,
	}, err
}

type unknownTaskError string

func (e unknownTaskError) Error() string {
	return "unknown task " + string(e)
}
