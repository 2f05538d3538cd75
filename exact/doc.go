// Package exact implements exact inference for discrete models: full
// enumeration over a joint distribution or a Bayesian network, and
// variable elimination over factors.
//
// What:
//
//   - EnumerateJointAsk answers P(X | e) against an explicit
//     probdist.Joint by summing all hidden-variable assignments.
//   - EnumerationAsk answers P(X | e) against a bayesnet.Net by recursive
//     summation in topological order (Figure 14.9 of AIMA).
//   - EliminationAsk answers the same query by variable elimination
//     (Figure 14.11): factors are built per variable in reverse
//     declaration order and hidden variables are summed out eagerly.
//
// Why:
//
//   - Enumeration is the exponential but obviously correct baseline;
//     elimination reuses intermediate sums and is the practical choice.
//   - The two must agree on every query; tests lean on that invariant.
//
// Ordering policy:
//
//	Elimination order is exactly the reverse of the network's declaration
//	order. No min-fill or other dynamic heuristic is applied; results are
//	reproducible by construction.
//
// Complexity (n variables, d = max domain size):
//
//   - EnumerationAsk:  O(d^n) time, O(n) recursion depth.
//   - EliminationAsk:  O(d^w) time/memory, w = induced width under the
//     fixed order (worst case d^n).
//
// Errors:
//
//   - ErrQueryInEvidence: the query variable appears in the evidence.
//   - bayesnet.ErrUnknownVariable: the query names no network variable.
//   - probdist.ErrZeroMass: the evidence has zero probability.
package exact
