package intersection

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Source is the random number source used to generate sequences.
// *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed generator. A nil seed draws a fresh one.
func NewSource(seed *int64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := uint64(*seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// Interval is the closed range [Lo, Hi] values are drawn from.
type Interval struct {
	Lo int
	Hi int
}

// NewInterval returns the closed interval [lo, hi].
func NewInterval(lo, hi int) (Interval, error) {
	if lo > hi {
		return Interval{}, fmt.Errorf("%w: interval lower bound %d is greater than upper bound %d", ErrInvalidArgument, lo, hi)
	}
	// hi-lo+1 must fit in an int
	if span := hi - lo; span < 0 || span == math.MaxInt {
		return Interval{}, fmt.Errorf("%w: interval %s spans too many values", ErrInvalidArgument, Interval{lo, hi})
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

// Len returns the number of distinct values in the interval.
func (i Interval) Len() int {
	return i.Hi - i.Lo + 1
}

// Contains reports whether v lies within the interval.
func (i Interval) Contains(v int) bool {
	return v >= i.Lo && v <= i.Hi
}

func (i Interval) String() string {
	return fmt.Sprintf("%d..%d", i.Lo, i.Hi)
}

// RandomSequence generates size integers drawn from interval.
//
// With unique set, values are sampled without replacement and placed in a
// uniformly random order; size must not exceed interval.Len(). Otherwise each
// value is drawn independently and duplicates are possible.
func RandomSequence(rng Source, size int, interval Interval, unique bool) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: size must be >= 0, but was %d", ErrInvalidArgument, size)
	}

	n := interval.Len()

	if !unique {
		seq := make([]int, size)
		for i := range seq {
			seq[i] = interval.Lo + rng.IntN(n)
		}
		return seq, nil
	}

	if size > n {
		return nil, fmt.Errorf("%w: cannot choose %d unique elements from the %d values in %s",
			ErrInvalidArgument, size, n, interval)
	}

	if size <= n/2 {
		return sparseSample(rng, size, interval), nil
	}

	pool := make([]int, n)
	for i := range pool {
		pool[i] = interval.Lo + i
	}

	// Partial Fisher-Yates: pool[:i] holds the picks so far, pool[i:] the remaining candidates.
	for i := 0; i < size; i++ {
		j := i + rng.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:size:size], nil
}

// sparseSample runs the same partial Fisher-Yates as RandomSequence over a
// virtual pool, recording only displaced offsets. Memory is O(size), not O(interval.Len()).
func sparseSample(rng Source, size int, interval Interval) []int {
	n := interval.Len()
	displaced := make(map[int]int, size)
	offsetAt := func(k int) int {
		if v, ok := displaced[k]; ok {
			return v
		}
		return k
	}

	seq := make([]int, size)
	for i := range seq {
		j := i + rng.IntN(n-i)
		picked := offsetAt(j)
		displaced[j] = offsetAt(i)
		seq[i] = interval.Lo + picked
	}
	return seq
}
