package core

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/google/uuid"
)

// Request describes one batch execution: a task, its ordered inputs, the
// strategy to run them under, and an optional worker-count bound.
type Request[I, O any] struct {
	Fn       Task[I, O]
	Inputs   []I
	Strategy StrategyTag

	// Workers bounds the fixed pool. Zero means "use the default", one
	// worker per available CPU. The other strategies ignore it.
	Workers int
}

// Harness is the public entry point coordinating strategy selection,
// execution, and timing. It owns no state between calls beyond the
// bounded run history kept for observability.
type Harness struct {
	logger  Logger
	metrics Metrics
	history runHistory
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger the harness reports batch runs to.
func WithLogger(logger Logger) Option {
	return func(h *Harness) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink for batch runs.
func WithMetrics(metrics Metrics) Option {
	return func(h *Harness) {
		if metrics != nil {
			h.metrics = metrics
		}
	}
}

// WithHistoryCapacity bounds the run history ring.
func WithHistoryCapacity(capacity int) Option {
	return func(h *Harness) {
		h.history = newRunHistory(capacity)
	}
}

// NewHarness creates a Harness. By default it logs nowhere and records
// no metrics; the caller-facing surface decides how to report results.
func NewHarness(opts ...Option) *Harness {
	h := &Harness{
		logger:  NewNoOpLogger(),
		metrics: &NilMetrics{},
		history: newRunHistory(defaultRunHistoryCapacity),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RecentRuns returns completed run records in newest-first order.
func (h *Harness) RecentRuns(limit int) []RunRecord {
	return h.history.Recent(limit)
}

// LastRun returns the most recent run record, if any.
func (h *Harness) LastRun() (RunRecord, bool) {
	return h.history.Last()
}

// DefaultWorkers is the worker bound used when a request leaves it
// unset: one worker per available processing unit.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// Execute runs one batch under the requested strategy and returns the
// ordered outcomes together with the measured wall-clock duration.
//
// The request is validated before any worker is spawned; an empty input
// sequence yields empty outcomes and a near-zero duration, not an error.
// The returned error is non-nil for invalid requests and for Serial's
// fail-fast stop; the isolating strategies report task failures only
// through the outcomes.
func Execute[I, O any](ctx context.Context, h *Harness, req Request[I, O]) (Result[O], error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := validate(req); err != nil {
		return Result[O]{}, err
	}

	// Resolve the effective worker count so the result reports what the
	// strategy actually used: the pool takes the bound (defaulted to one
	// worker per CPU), per-task spawns one worker per input, and serial
	// is the calling goroutine.
	workers := req.Workers
	switch req.Strategy {
	case StrategyPool:
		if workers == 0 {
			workers = DefaultWorkers()
		}
	case StrategyPerTask:
		workers = len(req.Inputs)
	case StrategySerial:
		workers = 1
	}

	strategy, err := strategyFor[I, O](req.Strategy, workers)
	if err != nil {
		return Result[O]{}, &InvalidRequestError{Reason: err}
	}

	var (
		outcomes []Outcome[O]
		runErr   error
	)
	elapsed := Measure(func() {
		outcomes, runErr = strategy.Run(ctx, req.Fn, req.Inputs)
	})
	if outcomes == nil && runErr != nil {
		// Strategy-level rejection, nothing ran.
		return Result[O]{}, runErr
	}

	result := Result[O]{
		RunID:    uuid.New(),
		Strategy: req.Strategy,
		Workers:  workers,
		Outcomes: outcomes,
		Elapsed:  elapsed,
	}
	h.observe(result.record(), panickedCount(outcomes), runErr)
	return result, runErr
}

// validate rejects malformed requests before any work is dispatched.
func validate[I, O any](req Request[I, O]) error {
	var problems error
	if req.Fn == nil {
		problems = errors.Join(problems, errors.New("task function must not be nil"))
	}
	if req.Workers < 0 {
		problems = errors.Join(problems, errors.New("worker count must not be negative"))
	}
	if req.Workers > maxAllowedWorkers {
		problems = errors.Join(problems, errors.New("worker count exceeds the allowed maximum"))
	}
	switch req.Strategy {
	case StrategySerial, StrategyPerTask, StrategyPool:
	default:
		problems = errors.Join(problems, errors.New("unknown strategy tag"))
	}
	if problems != nil {
		return &InvalidRequestError{Reason: problems}
	}
	return nil
}

// panickedCount counts the failed positions whose cause was a recovered
// panic rather than a returned error.
func panickedCount[O any](outcomes []Outcome[O]) int {
	n := 0
	for _, o := range outcomes {
		var taskErr *TaskError
		if o.Status == StatusFailed && errors.As(o.Err, &taskErr) && taskErr.Panicked {
			n++
		}
	}
	return n
}

// observe records one finished run into the history, metrics, and log.
func (h *Harness) observe(rec RunRecord, panics int, runErr error) {
	h.history.Add(rec)

	h.metrics.RecordBatchDuration(string(rec.Strategy), rec.Tasks, rec.Elapsed)
	h.metrics.RecordWorkerCount(string(rec.Strategy), rec.Workers)
	for i := 0; i < rec.Failed; i++ {
		h.metrics.RecordTaskFailure(string(rec.Strategy))
	}
	for i := 0; i < panics; i++ {
		h.metrics.RecordTaskPanic(string(rec.Strategy))
	}

	h.logger.Debug("batch executed",
		F("run_id", rec.RunID),
		F("strategy", rec.Strategy),
		F("tasks", rec.Tasks),
		F("failed", rec.Failed),
		F("elapsed", rec.Elapsed),
	)
	if runErr != nil && !IsInvalidRequest(runErr) {
		h.logger.Warn("batch stopped early", F("run_id", rec.RunID), F("error", runErr))
	}
}

// record summarizes a Result for the run history.
func (r Result[O]) record() RunRecord {
	return RunRecord{
		RunID:      r.RunID,
		Strategy:   r.Strategy,
		Workers:    r.Workers,
		Tasks:      len(r.Outcomes),
		Failed:     r.FailedCount(),
		Elapsed:    r.Elapsed,
		FinishedAt: time.Now(),
	}
}
