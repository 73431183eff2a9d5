package core_test

import (
	"sync/atomic"
	"time"
)

// recordingMetrics implements core.Metrics for testing
type recordingMetrics struct {
	batches  atomic.Int32
	tasks    atomic.Int32
	failures atomic.Int32
	panics   atomic.Int32
	workers  atomic.Int32
}

func (m *recordingMetrics) RecordBatchDuration(strategy string, taskCount int, duration time.Duration) {
	m.batches.Add(1)
	m.tasks.Add(int32(taskCount))
}

func (m *recordingMetrics) RecordTaskFailure(strategy string) {
	m.failures.Add(1)
}

func (m *recordingMetrics) RecordTaskPanic(strategy string) {
	m.panics.Add(1)
}

func (m *recordingMetrics) RecordWorkerCount(strategy string, workers int) {
	m.workers.Store(int32(workers))
}
