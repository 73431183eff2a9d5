package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/steliosot/multiprocessing-threads/bench"
	"github.com/steliosot/multiprocessing-threads/core"
)

func benchCommand(logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Run the scenarios of a TOML config under every requested strategy",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Required: true,
				Usage:    "Path to the scenario config file",
			},
		},

		Action: func(c *cli.Context) error {
			return benchAction(c, logger)
		},
	}
}

func benchAction(c *cli.Context, logger *log.Logger) error {
	cfg, err := bench.Load(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	harness := core.NewHarness(core.WithLogger(newCoreLogger(logger)))
	runner := bench.NewRunner(harness)

	rows, err := runner.Run(c.Context, cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	for _, row := range rows {
		fmt.Printf("%-20s %-8s workers=%-3d tasks=%-4d failed=%-3d %v\n",
			row.Scenario, row.Strategy, row.Workers, row.Tasks, row.Failed, row.Elapsed)
	}
	return nil
}
