package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the mutation engine.
type Metrics struct {
	// Per-path operation outcomes
	OperationsTotal *prometheus.CounterVec

	// Batch metrics
	BatchesTotal  *prometheus.CounterVec
	BatchDuration *prometheus.HistogramVec

	// Copy metrics
	BytesCopied prometheus.Counter

	// Listener metrics
	ListenerTimeouts prometheus.Counter

	// Concurrency
	TasksInFlight prometheus.Gauge
}

// NewMetrics creates a metrics collector registered on its own registry.
// Use Registry to expose it; keeping the registry private avoids collisions
// with the default global registry in tests.
func NewMetrics() *Metrics {
	return newMetrics(prometheus.NewRegistry())
}

// NewMetricsWith creates a metrics collector on the given registerer.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	return newMetrics(reg)
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "perch_operations_total",
				Help: "Per-path filesystem operations by kind and outcome",
			},
			[]string{"op", "outcome"},
		),
		BatchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "perch_batches_total",
				Help: "Batch operations by kind",
			},
			[]string{"op"},
		),
		BatchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "perch_batch_duration_seconds",
				Help:    "Batch operation duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
		BytesCopied: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "perch_bytes_copied_total",
				Help: "Total file bytes copied",
			},
		),
		ListenerTimeouts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "perch_listener_timeouts_total",
				Help: "Pre-relocation listener hooks that missed their deadline",
			},
		),
		TasksInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "perch_tasks_in_flight",
				Help: "Filesystem tasks currently executing",
			},
		),
	}

	reg.MustRegister(
		m.OperationsTotal,
		m.BatchesTotal,
		m.BatchDuration,
		m.BytesCopied,
		m.ListenerTimeouts,
		m.TasksInFlight,
	)
	return m
}

// RecordOperation records a single per-path outcome.
func (m *Metrics) RecordOperation(op string, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.OperationsTotal.WithLabelValues(op, outcome).Inc()
}

// Timer tracks the duration of a batch operation.
type Timer struct {
	metrics *Metrics
	op      string
	start   time.Time
}

// BatchTimer starts timing a batch operation.
func (m *Metrics) BatchTimer(op string) *Timer {
	m.BatchesTotal.WithLabelValues(op).Inc()
	return &Timer{metrics: m, op: op, start: time.Now()}
}

// Stop records the elapsed duration.
func (t *Timer) Stop() {
	t.metrics.BatchDuration.WithLabelValues(t.op).Observe(time.Since(t.start).Seconds())
}
