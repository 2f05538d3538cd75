package sampling

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bayes/bayesnet"
	"github.com/katalvlaran/bayes/probdist"
	"github.com/katalvlaran/bayes/rng"
)

// LikelihoodWeighting estimates P(X | e) from n weighted samples.
// Evidenced variables are never resampled: each is fixed to its observed
// value and the sample's weight is multiplied by that variable's
// conditional probability under the partial assignment. Non-evidenced
// variables are sampled ancestrally. X's tally accumulates weight, not
// count, so no sample is ever rejected — at the cost of higher variance
// when the evidence is rare.
// Complexity: O(n·|net|).
func LikelihoodWeighting(X string, e probdist.Event, bn *bayesnet.Net, n int, r *rand.Rand) (*probdist.Dist, error) {
	if n <= 0 {
		return nil, fmt.Errorf("LikelihoodWeighting(%q): n=%d: %w", X, n, ErrSampleCount)
	}
	if _, observed := e[X]; observed {
		return nil, fmt.Errorf("LikelihoodWeighting(%q): %w", X, ErrQueryInEvidence)
	}
	domain, err := bn.VariableValues(X)
	if err != nil {
		return nil, fmt.Errorf("LikelihoodWeighting: %w", err)
	}
	if r == nil {
		r = rng.New(0)
	}

	weights := make(map[probdist.Value]float64, len(domain))
	for _, v := range domain {
		weights[v] = 0
	}
	for i := 0; i < n; i++ {
		event, w, err := weightedSample(bn, e, r)
		if err != nil {
			return nil, fmt.Errorf("LikelihoodWeighting(%q): %w", X, err)
		}
		weights[event[X]] += w
	}

	d, err := probdist.FromFreqs(X, weights)
	if err != nil {
		return nil, fmt.Errorf("LikelihoodWeighting(%q): %w", X, err)
	}
	return d, nil
}

// weightedSample draws one event consistent with e, together with the
// likelihood weight the fixed evidence contributes.
func weightedSample(bn *bayesnet.Net, e probdist.Event, r *rand.Rand) (probdist.Event, float64, error) {
	w := 1.0
	event := make(probdist.Event, len(bn.Variables()))
	for name, v := range e {
		event[name] = v
	}
	for _, node := range bn.Nodes() {
		name := node.Variable()
		if observed, ok := e[name]; ok {
			p, err := node.P(observed, event)
			if err != nil {
				return nil, 0, fmt.Errorf("weightedSample: %w", err)
			}
			w *= p
			continue
		}
		v, err := sampleNode(node, event, r)
		if err != nil {
			return nil, 0, fmt.Errorf("weightedSample: %w", err)
		}
		event[name] = v
	}
	return event, w, nil
}
