// Package rng centralizes deterministic random generation for every
// stochastic algorithm in this module.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//   - Safety: no panics or logging; only sentinel errors.
//   - Performance: O(1) draws, O(n) cumulative-weight setup per resample.
//
// What:
//
//   - New / Derive: seeded *rand.Rand construction and independent
//     substream derivation (SplitMix64-style mixing).
//   - Bernoulli: a true/false draw with success probability p.
//   - Choice: a uniform pick from a non-empty slice.
//   - WeightedSample: n independent draws with replacement, proportional
//     to non-negative weights (cumulative sums via gonum floats).
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand
//     across goroutines; use Derive to create independent streams.
//
// Errors:
//
//   - ErrEmptyItems:     sampling from an empty slice.
//   - ErrLengthMismatch: items and weights of different lengths.
//   - ErrNegativeWeight: a weight below zero.
//   - ErrZeroTotalWeight: weights summing to zero — nothing is drawable.
//   - ErrNegativeCount:  a negative sample count.
package rng
