package sampling

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bayes/bayesnet"
	"github.com/katalvlaran/bayes/probdist"
	"github.com/katalvlaran/bayes/rng"
)

// Prior draws one sample from bn's full joint distribution: nodes are
// visited in topological order and each variable is sampled from its
// conditional given the already-sampled parents. The result binds every
// network variable. If r==nil, the default deterministic stream is used.
// Complexity: O(n·d).
func Prior(bn *bayesnet.Net, r *rand.Rand) (probdist.Event, error) {
	if r == nil {
		r = rng.New(0)
	}
	event := make(probdist.Event, len(bn.Variables()))
	for _, node := range bn.Nodes() {
		v, err := sampleNode(node, event, r)
		if err != nil {
			return nil, fmt.Errorf("Prior: %w", err)
		}
		event[node.Variable()] = v
	}
	return event, nil
}

// Rejection estimates P(X | e) from n prior samples, discarding any
// inconsistent with e and tallying X's value among the survivors. If
// every sample is rejected the zero-mass normalization error surfaces;
// retry with a larger n or weaker evidence.
// Complexity: O(n·|net|).
func Rejection(X string, e probdist.Event, bn *bayesnet.Net, n int, r *rand.Rand) (*probdist.Dist, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Rejection(%q): n=%d: %w", X, n, ErrSampleCount)
	}
	if _, observed := e[X]; observed {
		return nil, fmt.Errorf("Rejection(%q): %w", X, ErrQueryInEvidence)
	}
	domain, err := bn.VariableValues(X)
	if err != nil {
		return nil, fmt.Errorf("Rejection: %w", err)
	}
	if r == nil {
		r = rng.New(0)
	}

	counts := make(map[probdist.Value]float64, len(domain))
	for _, v := range domain {
		counts[v] = 0
	}
	for i := 0; i < n; i++ {
		sample, err := Prior(bn, r)
		if err != nil {
			return nil, fmt.Errorf("Rejection(%q): %w", X, err)
		}
		if consistent(sample, e) {
			counts[sample[X]]++
		}
	}

	d, err := probdist.FromFreqs(X, counts)
	if err != nil {
		return nil, fmt.Errorf("Rejection(%q): all samples rejected: %w", X, err)
	}
	return d, nil
}
