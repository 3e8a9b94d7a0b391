package intersection

import (
	"fmt"
	"time"
)

// DefaultWarmup is the number of untimed IntersectBySize calls made before
// a benchmark starts measuring.
const DefaultWarmup = 10

// MaxListSize bounds the length of each generated list. It keeps the
// generation domains of Run and Execute representable and in memory.
const MaxListSize = 10_000_000

// Strategy names which side of an intersection became the lookup set.
type Strategy string

const (
	SmallToSet Strategy = "small_to_set"
	LargeToSet Strategy = "large_to_set"
)

// BenchmarkResult holds the timings of both strategies, in microseconds.
type BenchmarkResult struct {
	SizeA          int
	SizeB          int
	MeanSmallToSet float64
	MeanLargeToSet float64
	ErrSmallToSet  float64
	ErrLargeToSet  float64
}

// ExecutionResult is the outcome of a single timed Intersect call.
type ExecutionResult struct {
	// Micros is the elapsed time in microseconds.
	Micros float64
	Size   int
}

// Runner generates random inputs and times intersections on them.
// A Runner is not safe for concurrent use; create one per invocation.
type Runner struct {
	rng      Source
	warmup   int
	progress func(string)
	observe  func(Strategy, time.Duration)
}

// Option configures a Runner.
type Option func(*Runner)

// WithWarmup sets the number of warm-up repetitions. Negative values are treated as zero.
func WithWarmup(n int) Option {
	return func(r *Runner) {
		r.warmup = max(n, 0)
	}
}

// WithProgress registers a callback receiving human readable progress messages.
func WithProgress(fn func(string)) Option {
	return func(r *Runner) {
		r.progress = fn
	}
}

// WithObserver registers a callback invoked with the duration of every timed trial.
func WithObserver(fn func(Strategy, time.Duration)) Option {
	return func(r *Runner) {
		r.observe = fn
	}
}

// NewRunner creates a Runner drawing its inputs from rng.
func NewRunner(rng Source, opts ...Option) *Runner {
	r := &Runner{rng: rng, warmup: DefaultWarmup}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run benchmarks IntersectBySize with the smaller and with the larger input
// turned into the lookup set. Every trial draws fresh unique inputs of sizes
// sizeA and sizeB from [0, max(sizeA, sizeB)].
func (r *Runner) Run(sizeA, sizeB, iterations int) (BenchmarkResult, error) {
	if err := validateSizes(sizeA, sizeB); err != nil {
		return BenchmarkResult{}, err
	}
	if iterations < 2 {
		return BenchmarkResult{}, fmt.Errorf("%w: a benchmark needs at least 2 iterations, but got %d", ErrInvalidArgument, iterations)
	}

	domain, err := NewInterval(0, max(sizeA, sizeB))
	if err != nil {
		return BenchmarkResult{}, err
	}

	r.report(fmt.Sprintf("Warming up with %d repetitions...", r.warmup))
	for i := 0; i < r.warmup; i++ {
		a, b, err := r.uniquePair(sizeA, sizeB, domain)
		if err != nil {
			return BenchmarkResult{}, err
		}
		IntersectBySize(a, b, true)
	}

	r.report(fmt.Sprintf("Timing %d iterations with the smaller list as set...", iterations))
	small, err := r.trials(sizeA, sizeB, iterations, domain, SmallToSet)
	if err != nil {
		return BenchmarkResult{}, err
	}

	r.report(fmt.Sprintf("Timing %d iterations with the larger list as set...", iterations))
	large, err := r.trials(sizeA, sizeB, iterations, domain, LargeToSet)
	if err != nil {
		return BenchmarkResult{}, err
	}

	res := BenchmarkResult{SizeA: sizeA, SizeB: sizeB}
	if res.MeanSmallToSet, res.ErrSmallToSet, err = Summarize(small); err != nil {
		return BenchmarkResult{}, err
	}
	if res.MeanLargeToSet, res.ErrLargeToSet, err = Summarize(large); err != nil {
		return BenchmarkResult{}, err
	}

	return res, nil
}

// Execute times a single Intersect call on two sequences drawn, duplicates
// allowed, from the wider domain [0, 10*max(sizeA, sizeB)]. aToSet selects
// which sequence becomes the lookup set.
func (r *Runner) Execute(sizeA, sizeB int, aToSet bool) (ExecutionResult, error) {
	if err := validateSizes(sizeA, sizeB); err != nil {
		return ExecutionResult{}, err
	}

	domain, err := NewInterval(0, 10*max(sizeA, sizeB))
	if err != nil {
		return ExecutionResult{}, err
	}

	a, err := RandomSequence(r.rng, sizeA, domain, false)
	if err != nil {
		return ExecutionResult{}, err
	}
	b, err := RandomSequence(r.rng, sizeB, domain, false)
	if err != nil {
		return ExecutionResult{}, err
	}

	toSet, toScan := b, a
	if aToSet {
		toSet, toScan = a, b
	}

	start := time.Now()
	size := len(Intersect(toSet, toScan))
	elapsed := time.Since(start)

	return ExecutionResult{Micros: micros(elapsed), Size: size}, nil
}

func (r *Runner) trials(sizeA, sizeB, iterations int, domain Interval, strategy Strategy) ([]float64, error) {
	smallerToSet := strategy == SmallToSet
	times := make([]float64, iterations)

	for i := range times {
		a, b, err := r.uniquePair(sizeA, sizeB, domain)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		IntersectBySize(a, b, smallerToSet)
		elapsed := time.Since(start)

		times[i] = micros(elapsed)
		if r.observe != nil {
			r.observe(strategy, elapsed)
		}
	}

	return times, nil
}

func (r *Runner) uniquePair(sizeA, sizeB int, domain Interval) ([]int, []int, error) {
	a, err := RandomSequence(r.rng, sizeA, domain, true)
	if err != nil {
		return nil, nil, err
	}
	b, err := RandomSequence(r.rng, sizeB, domain, true)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (r *Runner) report(msg string) {
	if r.progress != nil {
		r.progress(msg)
	}
}

func validateSizes(sizeA, sizeB int) error {
	if sizeA < 1 {
		return fmt.Errorf("%w: list A must have at least 1 element, but has %d", ErrInvalidArgument, sizeA)
	}
	if sizeB < 1 {
		return fmt.Errorf("%w: list B must have at least 1 element, but has %d", ErrInvalidArgument, sizeB)
	}
	if sizeA > MaxListSize {
		return fmt.Errorf("%w: list A must have at most %d elements, but has %d", ErrInvalidArgument, MaxListSize, sizeA)
	}
	if sizeB > MaxListSize {
		return fmt.Errorf("%w: list B must have at most %d elements, but has %d", ErrInvalidArgument, MaxListSize, sizeB)
	}
	return nil
}

// micros converts d to microseconds at nanosecond resolution.
func micros(d time.Duration) float64 {
	return float64(d.Nanoseconds()) * 1e-3
}
