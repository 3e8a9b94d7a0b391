package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"intersection-benchmark/internal/intersection"
)

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveTrial(intersection.SmallToSet, time.Millisecond)
		m.ObserveExecution(intersection.ExecutionResult{Micros: 3, Size: 1})
		m.CountRequest(opBenchmark, outcomeOK)
	})
}

func TestMetrics_CountRequest(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.CountRequest(opBenchmark, outcomeOK)
	m.CountRequest(opBenchmark, outcomeOK)
	m.CountRequest(opCalculate, outcomeRejected)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(opBenchmark, outcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(opCalculate, outcomeRejected)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(opCalculate, outcomeFailed)))
}

func TestMetrics_BenchmarkObservesEveryTrial(t *testing.T) {
	s, reg := newTestServer(t)

	body := encodeBody(t, BenchmarkInput{ListSizeA: 5, ListSizeB: 20, Iterations: 4})
	req := httptest.NewRequest(http.MethodPost, "/intersection/benchmark", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.RunBenchmark(w, req, RunBenchmarkParams{})
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 2, testutil.CollectAndCount(s.metrics.TrialDurationSeconds))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.RequestsTotal.WithLabelValues(opBenchmark, outcomeOK)))

	count, err := testutil.GatherAndCount(reg, "intersection_trial_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_RejectedRequests(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/intersection/calculate", bytes.NewReader([]byte(`{"listSizeA":0,"listSizeB":1}`)))
	w := httptest.NewRecorder()
	s.CalculateIntersection(w, req, CalculateIntersectionParams{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.RequestsTotal.WithLabelValues(opCalculate, outcomeRejected)))
}
