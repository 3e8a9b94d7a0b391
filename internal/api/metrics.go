package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"intersection-benchmark/internal/intersection"
)

const metricsNamespace = "intersection"

// Operation labels.
const (
	opBenchmark = "benchmark"
	opCalculate = "calculate"
)

// Outcome labels.
const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	// RequestsTotal counts handled operations by outcome.
	RequestsTotal *prometheus.CounterVec

	// TrialDurationSeconds records every timed benchmark trial by strategy.
	TrialDurationSeconds *prometheus.HistogramVec

	// CalculateDurationSeconds records single intersection executions.
	CalculateDurationSeconds prometheus.Histogram

	// IntersectionSize records the result size of single executions.
	IntersectionSize prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "requests_total",
				Help:      "Total number of intersection operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),

		TrialDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "trial_duration_seconds",
				Help:      "Duration of a single timed benchmark trial by strategy",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"strategy"},
		),

		CalculateDurationSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "calculate_duration_seconds",
				Help:      "Duration of single intersection executions",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
		),

		IntersectionSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "intersection_size",
				Help:      "Number of elements in the result of single intersection executions",
				Buckets:   prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
	}
}

// ObserveTrial records one timed benchmark trial. Safe on a nil receiver.
func (m *Metrics) ObserveTrial(strategy intersection.Strategy, d time.Duration) {
	if m == nil {
		return
	}
	m.TrialDurationSeconds.WithLabelValues(string(strategy)).Observe(d.Seconds())
}

// ObserveExecution records a single intersection execution. Safe on a nil receiver.
func (m *Metrics) ObserveExecution(res intersection.ExecutionResult) {
	if m == nil {
		return
	}
	m.CalculateDurationSeconds.Observe(res.Micros * 1e-6)
	m.IntersectionSize.Observe(float64(res.Size))
}

// CountRequest increments the request counter. Safe on a nil receiver.
func (m *Metrics) CountRequest(operation, outcome string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(operation, outcome).Inc()
}
