package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/steliosot/multiprocessing-threads/core"
	"github.com/steliosot/multiprocessing-threads/tasks"
)

func runCommand(logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run one task batch under one strategy",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "strategy",
				Aliases: []string{"s"},
				Value:   "serial",
				Usage:   "Execution strategy: serial, pertask or pool",
			},
			&cli.StringFlag{
				Name:    "task",
				Aliases: []string{"t"},
				Value:   "sumsquares",
				Usage:   "Workload: sleep, sumsquares or fetch",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   8,
				Usage:   "Number of inputs in the batch",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Worker bound for the pool strategy (default: one per CPU)",
			},
			&cli.DurationFlag{
				Name:  "sleep",
				Value: 50 * time.Millisecond,
				Usage: "Per-task delay for the sleep workload",
			},
			&cli.Int64Flag{
				Name:  "bound",
				Value: 5_000_000,
				Usage: "Upper bound n for the sum-of-squares workload",
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: "URL for the fetch workload",
			},
		},

		Action: func(c *cli.Context) error {
			return runAction(c, logger)
		},
	}
}

func runAction(c *cli.Context, logger *log.Logger) error {
	tag, err := core.ParseStrategyTag(c.String("strategy"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	count := c.Int("count")
	if count < 0 {
		return cli.Exit("count must not be negative", 1)
	}

	harness := core.NewHarness(core.WithLogger(newCoreLogger(logger)))
	workers := c.Int("workers")

	var rec core.RunRecord
	switch c.String("task") {
	case "sleep":
		inputs := make([]int, count)
		for i := range inputs {
			inputs[i] = 1
		}
		rec, err = runBatch(c, harness, tasks.Sleep(c.Duration("sleep")), inputs, tag, workers)

	case "sumsquares":
		inputs := make([]int64, count)
		for i := range inputs {
			inputs[i] = c.Int64("bound")
		}
		rec, err = runBatch(c, harness, core.Task[int64, int64](tasks.SumOfSquares), inputs, tag, workers)

	case "fetch":
		url := c.String("url")
		if url == "" {
			return cli.Exit("fetch workload needs --url", 1)
		}
		inputs := make([]string, count)
		for i := range inputs {
			inputs[i] = url
		}
		rec, err = runBatch(c, harness, tasks.Fetch(nil), inputs, tag, workers)

	default:
		return cli.Exit(fmt.Sprintf("unknown task %q", c.String("task")), 1)
	}

	if err != nil {
		if core.IsInvalidRequest(err) {
			return cli.Exit(err.Error(), 1)
		}
		logger.Warn("batch stopped early", "error", err)
	}

	logger.Info("batch finished",
		"strategy", rec.Strategy,
		"tasks", rec.Tasks,
		"failed", rec.Failed,
		"workers", rec.Workers,
		"elapsed", rec.Elapsed,
	)
	return nil
}

func runBatch[I, O any](c *cli.Context, h *core.Harness, fn core.Task[I, O], inputs []I, tag core.StrategyTag, workers int) (core.RunRecord, error) {
	result, err := core.Execute(c.Context, h, core.Request[I, O]{
		Fn:       fn,
		Inputs:   inputs,
		Strategy: tag,
		Workers:  workers,
	})
	if err != nil && core.IsInvalidRequest(err) {
		return core.RunRecord{}, err
	}
	return core.RunRecord{
		RunID:    result.RunID,
		Strategy: result.Strategy,
		Workers:  result.Workers,
		Tasks:    len(result.Outcomes),
		Failed:   result.FailedCount(),
		Elapsed:  result.Elapsed,
	}, err
}
