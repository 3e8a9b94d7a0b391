package intersection

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertFiniteNonNegative(t *testing.T, v float64) {
	t.Helper()
	assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "value %v is not finite", v)
	assert.GreaterOrEqual(t, v, 0.0)
}

func TestRunner_Run(t *testing.T) {
	r := NewRunner(seeded(10))

	res, err := r.Run(10, 1000, 2)
	require.NoError(t, err)

	assert.Equal(t, 10, res.SizeA)
	assert.Equal(t, 1000, res.SizeB)
	assert.Greater(t, res.MeanSmallToSet, 0.0)
	assert.Greater(t, res.MeanLargeToSet, 0.0)
	assertFiniteNonNegative(t, res.MeanSmallToSet)
	assertFiniteNonNegative(t, res.MeanLargeToSet)
	assertFiniteNonNegative(t, res.ErrSmallToSet)
	assertFiniteNonNegative(t, res.ErrLargeToSet)
}

func TestRunner_RunInvalidArguments(t *testing.T) {
	tests := []struct {
		name       string
		sizeA      int
		sizeB      int
		iterations int
	}{
		{name: "list A empty", sizeA: 0, sizeB: 10, iterations: 2},
		{name: "list B negative", sizeA: 10, sizeB: -3, iterations: 2},
		{name: "single iteration", sizeA: 10, sizeB: 10, iterations: 1},
		{name: "no iterations", sizeA: 10, sizeB: 10, iterations: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			r := NewRunner(seeded(11), WithObserver(func(Strategy, time.Duration) { calls++ }))

			_, err := r.Run(tt.sizeA, tt.sizeB, tt.iterations)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Zero(t, calls, "no trial may run before validation")
		})
	}
}

func TestRunner_RunObservesEveryTrial(t *testing.T) {
	counts := make(map[Strategy]int)
	var messages []string

	r := NewRunner(seeded(12),
		WithWarmup(3),
		WithObserver(func(s Strategy, d time.Duration) {
			counts[s]++
			assert.GreaterOrEqual(t, d, time.Duration(0))
		}),
		WithProgress(func(msg string) { messages = append(messages, msg) }),
	)

	_, err := r.Run(5, 50, 7)
	require.NoError(t, err)

	assert.Equal(t, map[Strategy]int{SmallToSet: 7, LargeToSet: 7}, counts)
	require.Len(t, messages, 3)
	assert.Equal(t, "Warming up with 3 repetitions...", messages[0])
}

func TestRunner_WarmupOption(t *testing.T) {
	assert.Equal(t, DefaultWarmup, NewRunner(seeded(1)).warmup)
	assert.Equal(t, 0, NewRunner(seeded(1), WithWarmup(-5)).warmup)
	assert.Equal(t, 25, NewRunner(seeded(1), WithWarmup(25)).warmup)
}

func TestRunner_Execute(t *testing.T) {
	tests := []struct {
		name   string
		sizeA  int
		sizeB  int
		aToSet bool
	}{
		{name: "A to set", sizeA: 4, sizeB: 8, aToSet: true},
		{name: "B to set", sizeA: 4, sizeB: 8, aToSet: false},
		{name: "large lists", sizeA: 1000, sizeB: 5000, aToSet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewRunner(seeded(13)).Execute(tt.sizeA, tt.sizeB, tt.aToSet)
			require.NoError(t, err)

			// Duplicates are allowed on this path, so the scanned list bounds the result.
			scanned := tt.sizeB
			if !tt.aToSet {
				scanned = tt.sizeA
			}
			assert.LessOrEqual(t, res.Size, scanned)
			assert.GreaterOrEqual(t, res.Size, 0)
			assertFiniteNonNegative(t, res.Micros)
		})
	}
}

func TestRunner_ExecuteInvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		sizeA   int
		sizeB   int
		wantMsg string
	}{
		{name: "list A empty", sizeA: 0, sizeB: 5, wantMsg: "list A must have at least 1 element"},
		{name: "list B empty", sizeA: 5, sizeB: 0, wantMsg: "list B must have at least 1 element"},
		{name: "list A above limit", sizeA: MaxListSize + 1, sizeB: 5, wantMsg: "list A must have at most"},
		{name: "domain would overflow", sizeA: math.MaxInt/10 + 1, sizeB: 1, wantMsg: "list A must have at most"},
		{name: "domain would wrap to a small value", sizeA: 1, sizeB: 1844674407370955162, wantMsg: "list B must have at most"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			assert.NotPanics(t, func() {
				_, err = NewRunner(seeded(14)).Execute(tt.sizeA, tt.sizeB, true)
			})
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestRunner_RunRejectsHugeLists(t *testing.T) {
	for _, size := range []int{MaxListSize + 1, math.MaxInt - 1} {
		var err error
		assert.NotPanics(t, func() {
			_, err = NewRunner(seeded(15)).Run(size, 1, 2)
		})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestRunner_IndependentRunnersInParallel(t *testing.T) {
	var wg sync.WaitGroup
	errs := make([]error, 8)

	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = NewRunner(NewSource(nil), WithWarmup(1)).Run(20, 200, 3)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}
