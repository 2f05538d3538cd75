package rng

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for sampling primitives.
var (
	// ErrEmptyItems indicates a draw from an empty item slice.
	ErrEmptyItems = errors.New("rng: cannot sample from empty items")
	// ErrLengthMismatch indicates items and weights of differing lengths.
	ErrLengthMismatch = errors.New("rng: items and weights must have equal length")
	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("rng: weights must be non-negative")
	// ErrZeroTotalWeight indicates weights that sum to zero.
	ErrZeroTotalWeight = errors.New("rng: total weight is zero")
	// ErrNegativeCount indicates a negative sample count.
	ErrNegativeCount = errors.New("rng: sample count must be non-negative")
)

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// New returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed
// verbatim.
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed with a SplitMix64-style finalizer, so derived streams stay
// uncorrelated even for adjacent identifiers.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic RNG stream from a base RNG
// and a stream identifier. If base==nil, defaultSeed is used as the
// parent. Otherwise base.Int63() is consumed once to decorrelate
// consecutive derivations, then mixed with the stream via deriveSeed.
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// Bernoulli reports true with probability p. If r==nil, the default
// deterministic stream is used (seed==0 policy).
// Complexity: O(1).
func Bernoulli(p float64, r *rand.Rand) bool {
	if r == nil {
		r = New(0)
	}
	return r.Float64() < p
}

// Choice returns one item drawn uniformly at random.
// Returns ErrEmptyItems for an empty slice.
// Complexity: O(1).
func Choice[T any](items []T, r *rand.Rand) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("Choice: %w", ErrEmptyItems)
	}
	if r == nil {
		r = New(0)
	}
	return items[r.Intn(len(items))], nil
}

// WeightedSample draws n items independently, with replacement, with
// probability proportional to the matching non-negative weights.
// Complexity: O(len(items) + n·log(len(items))).
func WeightedSample[T any](n int, items []T, weights []float64, r *rand.Rand) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("WeightedSample: n=%d: %w", n, ErrNegativeCount)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("WeightedSample: %w", ErrEmptyItems)
	}
	if len(items) != len(weights) {
		return nil, fmt.Errorf("WeightedSample: %d items, %d weights: %w",
			len(items), len(weights), ErrLengthMismatch)
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("WeightedSample: weight[%d]=%v: %w", i, w, ErrNegativeWeight)
		}
	}

	cum := make([]float64, len(weights))
	floats.CumSum(cum, weights)
	total := cum[len(cum)-1]
	if total == 0 {
		return nil, fmt.Errorf("WeightedSample: %w", ErrZeroTotalWeight)
	}
	if r == nil {
		r = New(0)
	}

	out := make([]T, n)
	for i := 0; i < n; i++ {
		u := r.Float64() * total
		idx := sort.Search(len(cum), func(j int) bool { return cum[j] > u })
		if idx == len(cum) { // u landed on the exact total; clamp
			idx = len(cum) - 1
		}
		out[i] = items[idx]
	}
	return out, nil
}
