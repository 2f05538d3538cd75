// Package sampling implements approximate Bayesian-network inference by
// Monte Carlo estimation: prior (ancestral) sampling, rejection sampling,
// likelihood weighting and Gibbs sampling over Markov blankets.
//
// What:
//
//   - Prior draws one full joint assignment, visiting nodes in
//     topological order and sampling each from its conditional.
//   - Rejection estimates P(X|e) by tallying prior samples consistent
//     with e (Figure 14.14); samples clashing with e are discarded.
//   - LikelihoodWeighting fixes evidenced variables and accumulates an
//     importance weight per sample instead of rejecting (Figure 14.15).
//   - Gibbs walks a Markov chain over the non-evidence variables,
//     resampling each in turn from its exact conditional given its
//     Markov blanket, tallying after every single-variable update
//     (Figure 14.16).
//
// Why:
//
//   - Exact inference is exponential; these estimators trade accuracy
//     for a sample budget n chosen by the caller.
//   - Rejection degrades with rare evidence (most samples discarded);
//     likelihood weighting never rejects but carries higher variance;
//     Gibbs needs no per-sample restart but mixes sequentially and must
//     not be parallelized across a sweep.
//
// Determinism:
//
//	Every entry point takes a *rand.Rand; nil selects the rng package's
//	default stream, so runs are reproducible by construction.
//
// Errors:
//
//   - ErrSampleCount:        a non-positive sample budget.
//   - ErrQueryInEvidence:    the query variable appears in the evidence.
//   - probdist.ErrZeroMass:  every sample rejected (or all weights zero);
//     the caller's recovery is a larger n or weaker evidence, never a
//     silent uniform answer.
package sampling
