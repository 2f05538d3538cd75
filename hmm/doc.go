// Package hmm implements temporal state estimation for a two-state
// Hidden Markov Model with boolean observations: filtering, smoothing,
// fixed-lag online smoothing and particle filtering.
//
// What:
//
//   - Model bundles the 2×2 transition matrix (as two row vectors), the
//     per-observation sensor likelihood vectors and a prior state
//     distribution (uniform by default). Immutable once built.
//   - Forward advances a belief one step: sensor ⊙ (Tᵀ·belief),
//     normalized. Backward passes the analogous message in reverse.
//   - ForwardBackward smooths a whole observation sequence, returning
//     one posterior per time step in original time order; the caller's
//     slice is never mutated.
//   - FixedLagSmoother is the online variant: it holds a running forward
//     belief and a 2×2 bridging matrix over the lag window, emits the
//     posterior for time t−d once d further observations have arrived,
//     and reports no estimate before that.
//   - ParticleFilter propagates, weighs and resamples a two-state
//     particle population for one observation.
//
// Why:
//
//   - Filtering answers "where am I now"; smoothing revises the past
//     with later evidence; fixed lag bounds the revision delay for
//     streaming use; particles trade exactness for a sample budget.
//
// Numerics:
//
//	The bridging-matrix update multiplies inverse sensor and transition
//	matrices at the trailing window edge (gonum mat). Particle weights
//	are normalized and then rounded to 4 decimal digits — a deliberate
//	precision cap carried over from the reference algorithm.
//
// Errors:
//
//   - ErrProbRange:     a model entry outside [0,1].
//   - ErrRowMass:       a transition row or prior not summing to 1.
//   - ErrZeroBelief:    a belief update normalizing to zero mass.
//   - ErrLag:           a fixed-lag depth below 1.
//   - ErrParticleCount: a non-positive particle count.
//   - gonum's inversion error, wrapped, when a window-edge matrix is
//     singular (a zero sensor likelihood).
package hmm
