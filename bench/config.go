// Package bench runs configured comparison scenarios through the
// execution harness and reports per-strategy timings.
package bench

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/steliosot/multiprocessing-threads/core"
)

// Default values.
const (
	DefaultCount      = 8
	DefaultSleepMs    = 50
	DefaultSumBound   = 5_000_000
	DefaultIterations = 1
)

// Config holds the full benchmark configuration.
type Config struct {
	// Workers is the default worker bound for pool scenarios that do
	// not set their own. Zero means one worker per CPU.
	Workers int `toml:"workers"`

	Scenarios []Scenario `toml:"scenario"`
}

// Scenario describes one workload to run under one or more strategies.
type Scenario struct {
	Name string `toml:"name"`

	// Task selects the workload: "sleep", "sumsquares" or "fetch".
	Task string `toml:"task"`

	// Count is the number of inputs in the batch.
	Count int `toml:"count"`

	// SleepMs is the base delay in milliseconds for the sleep task.
	SleepMs int `toml:"sleep_ms"`

	// SumBound is the upper bound n for the sum-of-squares task.
	SumBound int64 `toml:"sum_bound"`

	// URL is fetched Count times by the fetch task.
	URL string `toml:"url"`

	// Strategies lists the strategy tags to compare. Empty means all
	// three.
	Strategies []string `toml:"strategies"`

	// Workers bounds the fixed pool for this scenario.
	Workers int `toml:"workers"`
}

// Load reads a TOML config file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills in zero-valued fields.
func (c *Config) ApplyDefaults() {
	for i := range c.Scenarios {
		s := &c.Scenarios[i]
		if s.Count == 0 {
			s.Count = DefaultCount
		}
		if s.SleepMs == 0 {
			s.SleepMs = DefaultSleepMs
		}
		if s.SumBound == 0 {
			s.SumBound = DefaultSumBound
		}
		if len(s.Strategies) == 0 {
			s.Strategies = []string{
				string(core.StrategySerial),
				string(core.StrategyPerTask),
				string(core.StrategyPool),
			}
		}
		if s.Workers == 0 {
			s.Workers = c.Workers
		}
	}
}

// Validate checks scenario shapes before anything runs.
func (c *Config) Validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("config has no scenarios")
	}
	for i, s := range c.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenario %d has no name", i)
		}
		switch s.Task {
		case "sleep", "sumsquares":
		case "fetch":
			if s.URL == "" {
				return fmt.Errorf("scenario %q: fetch task needs a url", s.Name)
			}
		default:
			return fmt.Errorf("scenario %q: unknown task %q", s.Name, s.Task)
		}
		if s.Count < 0 {
			return fmt.Errorf("scenario %q: count must not be negative", s.Name)
		}
		for _, tag := range s.Strategies {
			if _, err := core.ParseStrategyTag(tag); err != nil {
				return fmt.Errorf("scenario %q: %w", s.Name, err)
			}
		}
	}
	return nil
}
