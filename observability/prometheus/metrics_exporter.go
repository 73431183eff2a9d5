package prometheus

import (
	"errors"
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/steliosot/multiprocessing-threads/core"
)

// ExporterOptions controls collector configuration.
type ExporterOptions struct {
	DurationBuckets []float64
}

// MetricsExporter adapts core.Metrics to Prometheus collectors.
type MetricsExporter struct {
	batchDurationSeconds *prom.HistogramVec
	batchTasksTotal      *prom.CounterVec
	taskFailureTotal     *prom.CounterVec
	taskPanicTotal       *prom.CounterVec
	workerCount          *prom.GaugeVec
}

var _ core.Metrics = (*MetricsExporter)(nil)

// NewMetricsExporter creates and registers Prometheus collectors for core.Metrics.
func NewMetricsExporter(namespace string, reg prom.Registerer, opts ExporterOptions) (*MetricsExporter, error) {
	if namespace == "" {
		namespace = "multiproc"
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	buckets := opts.DurationBuckets
	if len(buckets) == 0 {
		buckets = prom.DefBuckets
	}

	durationVec := prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "batch_duration_seconds",
		Help:      "Batch execution duration in seconds.",
		Buckets:   buckets,
	}, []string{"strategy"})
	tasksVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "batch_tasks_total",
		Help:      "Total number of tasks submitted in batches.",
	}, []string{"strategy"})
	failureVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "task_failure_total",
		Help:      "Total number of task failures.",
	}, []string{"strategy"})
	panicVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "task_panic_total",
		Help:      "Total number of task panics.",
	}, []string{"strategy"})
	workerVec := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "worker_count",
		Help:      "Worker bound used for the most recent batch.",
	}, []string{"strategy"})

	var err error
	if durationVec, err = registerCollector(reg, durationVec); err != nil {
		return nil, err
	}
	if tasksVec, err = registerCollector(reg, tasksVec); err != nil {
		return nil, err
	}
	if failureVec, err = registerCollector(reg, failureVec); err != nil {
		return nil, err
	}
	if panicVec, err = registerCollector(reg, panicVec); err != nil {
		return nil, err
	}
	if workerVec, err = registerCollector(reg, workerVec); err != nil {
		return nil, err
	}

	return &MetricsExporter{
		batchDurationSeconds: durationVec,
		batchTasksTotal:      tasksVec,
		taskFailureTotal:     failureVec,
		taskPanicTotal:       panicVec,
		workerCount:          workerVec,
	}, nil
}

// RecordBatchDuration records one batch run's duration and task count.
func (m *MetricsExporter) RecordBatchDuration(strategy string, taskCount int, duration time.Duration) {
	if m == nil {
		return
	}
	label := normalizeLabel(strategy, "unknown")
	m.batchDurationSeconds.WithLabelValues(label).Observe(duration.Seconds())
	m.batchTasksTotal.WithLabelValues(label).Add(float64(taskCount))
}

// RecordTaskFailure records a task that returned an error.
func (m *MetricsExporter) RecordTaskFailure(strategy string) {
	if m == nil {
		return
	}
	m.taskFailureTotal.WithLabelValues(normalizeLabel(strategy, "unknown")).Inc()
}

// RecordTaskPanic records a task that panicked.
func (m *MetricsExporter) RecordTaskPanic(strategy string) {
	if m == nil {
		return
	}
	m.taskPanicTotal.WithLabelValues(normalizeLabel(strategy, "unknown")).Inc()
}

// RecordWorkerCount records the worker bound used for a batch.
func (m *MetricsExporter) RecordWorkerCount(strategy string, workers int) {
	if m == nil {
		return
	}
	m.workerCount.WithLabelValues(normalizeLabel(strategy, "unknown")).Set(float64(workers))
}

func normalizeLabel(v string, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func registerCollector[T prom.Collector](reg prom.Registerer, collector T) (T, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegisteredErr prom.AlreadyRegisteredError
	if errors.As(err, &alreadyRegisteredErr) {
		existing, ok := alreadyRegisteredErr.ExistingCollector.(T)
		if !ok {
			return collector, fmt.Errorf("collector type mismatch for %T", collector)
		}
		return existing, nil
	}

	return collector, err
}
