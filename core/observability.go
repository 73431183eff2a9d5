package core

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Metrics: Interface for observability and monitoring
// =============================================================================

// Metrics defines the interface for collecting batch execution metrics.
// Implementations can send metrics to monitoring systems (Prometheus, StatsD, etc.).
//
// Methods should be non-blocking and fast to avoid skewing the timing
// comparison between strategies.
type Metrics interface {
	// RecordBatchDuration records the wall-clock duration of one batch
	// run under the named strategy.
	RecordBatchDuration(strategy string, taskCount int, duration time.Duration)

	// RecordTaskFailure records a task that returned an error.
	RecordTaskFailure(strategy string)

	// RecordTaskPanic records a task that panicked during execution.
	RecordTaskPanic(strategy string)

	// RecordWorkerCount records the worker bound used for a batch run.
	RecordWorkerCount(strategy string, workers int)
}

// NilMetrics provides a no-op metrics implementation that does nothing.
// This is the default when no metrics interface is provided.
type NilMetrics struct{}

// RecordBatchDuration is a no-op.
func (m *NilMetrics) RecordBatchDuration(strategy string, taskCount int, duration time.Duration) {
}

// RecordTaskFailure is a no-op.
func (m *NilMetrics) RecordTaskFailure(strategy string) {
}

// RecordTaskPanic is a no-op.
func (m *NilMetrics) RecordTaskPanic(strategy string) {
}

// RecordWorkerCount is a no-op.
func (m *NilMetrics) RecordWorkerCount(strategy string, workers int) {
}

// =============================================================================
// Run history
// =============================================================================

const defaultRunHistoryCapacity = 100

// RunRecord captures one completed batch execution.
type RunRecord struct {
	RunID      uuid.UUID
	Strategy   StrategyTag
	Workers    int
	Tasks      int
	Failed     int
	Elapsed    time.Duration
	FinishedAt time.Time
}

// runHistory is a bounded ring of completed run records.
type runHistory struct {
	mu    sync.Mutex
	items []RunRecord
	head  int
	count int
}

func newRunHistory(capacity int) runHistory {
	if capacity < 1 {
		capacity = defaultRunHistoryCapacity
	}
	return runHistory{items: make([]RunRecord, capacity)}
}

func (h *runHistory) Add(record RunRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.items) == 0 {
		return
	}

	h.items[h.head] = record
	h.head = (h.head + 1) % len(h.items)
	if h.count < len(h.items) {
		h.count++
	}
}

func (h *runHistory) Recent(limit int) []RunRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.count == 0 {
		return nil
	}

	if limit <= 0 || limit > h.count {
		limit = h.count
	}

	out := make([]RunRecord, 0, limit)
	for i := range limit {
		idx := (h.head - 1 - i + len(h.items)) % len(h.items)
		out = append(out, h.items[idx])
	}
	return out
}

func (h *runHistory) Last() (RunRecord, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.count == 0 {
		return RunRecord{}, false
	}

	idx := (h.head - 1 + len(h.items)) % len(h.items)
	return h.items[idx], true
}
