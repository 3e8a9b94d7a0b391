package api

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"intersection-benchmark/internal/intersection"
)

// Config holds the tunables of the HTTP handlers.
type Config struct {
	// Warmup is the number of untimed repetitions before a benchmark.
	Warmup int
}

// DefaultConfig returns the handler configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{Warmup: intersection.DefaultWarmup}
}

// Server implements ServerInterface on top of the intersection core.
type Server struct {
	cfg     Config
	metrics *Metrics
	log     logrus.FieldLogger
}

// NewServer creates a new server. metrics may be nil.
func NewServer(cfg Config, metrics *Metrics, log logrus.FieldLogger) ServerInterface {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{
		cfg:     cfg,
		metrics: metrics,
		log:     log,
	}
}

// GetHealth reports that the service is alive.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// RunBenchmark times both set strategies on fresh random inputs.
func (s *Server) RunBenchmark(w http.ResponseWriter, r *http.Request, params RunBenchmarkParams) {
	var req RunBenchmarkJSONRequestBody
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.fail(w, r, opBenchmark, err)
		return
	}

	runner := intersection.NewRunner(
		intersection.NewSource(params.Seed),
		intersection.WithWarmup(s.cfg.Warmup),
		intersection.WithObserver(s.metrics.ObserveTrial),
	)

	res, err := runner.Run(req.ListSizeA, req.ListSizeB, req.Iterations)
	if err != nil {
		s.fail(w, r, opBenchmark, err)
		return
	}

	s.metrics.CountRequest(opBenchmark, outcomeOK)
	writeJSON(w, http.StatusOK, BenchmarkOutput{
		ListSizeA:      res.SizeA,
		ListSizeB:      res.SizeB,
		MeanMsSmall:    res.MeanSmallToSet,
		MeanMsLarge:    res.MeanLargeToSet,
		MeanErrMsSmall: res.ErrSmallToSet,
		MeanErrMsLarge: res.ErrLargeToSet,
	})
}

// CalculateIntersection times one intersection of two random lists.
func (s *Server) CalculateIntersection(w http.ResponseWriter, r *http.Request, params CalculateIntersectionParams) {
	var req CalculateIntersectionJSONRequestBody
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.fail(w, r, opCalculate, err)
		return
	}

	res, err := intersection.NewRunner(intersection.NewSource(params.Seed)).
		Execute(req.ListSizeA, req.ListSizeB, req.ListAToSet)
	if err != nil {
		s.fail(w, r, opCalculate, err)
		return
	}

	s.metrics.CountRequest(opCalculate, outcomeOK)
	s.metrics.ObserveExecution(res)
	writeJSON(w, http.StatusOK, ExecutionOutput{
		TimeMs:   res.Micros,
		ListSize: res.Size,
	})
}

func (s *Server) decodeAndValidate(r *http.Request, v any) error {
	if err := decodeBody(r, v); err != nil {
		return err
	}
	return requestValidate.Struct(v)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, operation string, err error) {
	s.metrics.CountRequest(operation, handleError(w, r, s.log, err))
}
