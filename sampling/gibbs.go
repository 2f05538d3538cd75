package sampling

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bayes/bayesnet"
	"github.com/katalvlaran/bayes/probdist"
	"github.com/katalvlaran/bayes/rng"
)

// Gibbs estimates P(X | e) by Markov-chain sampling: every non-evidenced
// variable starts at a uniformly random domain value, then each in turn
// is resampled from its exact conditional given its Markov blanket held
// at the current state. X's value is tallied after every single-variable
// update, not only after a full sweep, so the tally total is
// n × (number of non-evidenced variables).
//
// The sweep is inherently sequential: each resample conditions on the
// previous full state.
// Complexity: O(n·|Z|·(d + children)).
func Gibbs(X string, e probdist.Event, bn *bayesnet.Net, n int, r *rand.Rand) (*probdist.Dist, error) {
	counts, err := gibbsCounts(X, e, bn, n, r)
	if err != nil {
		return nil, err
	}
	d, err := probdist.FromFreqs(X, counts)
	if err != nil {
		return nil, fmt.Errorf("Gibbs(%q): %w", X, err)
	}
	return d, nil
}

// gibbsCounts runs the chain and returns the raw tallies.
func gibbsCounts(X string, e probdist.Event, bn *bayesnet.Net, n int, r *rand.Rand) (map[probdist.Value]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Gibbs(%q): n=%d: %w", X, n, ErrSampleCount)
	}
	if _, observed := e[X]; observed {
		return nil, fmt.Errorf("Gibbs(%q): %w", X, ErrQueryInEvidence)
	}
	domain, err := bn.VariableValues(X)
	if err != nil {
		return nil, fmt.Errorf("Gibbs: %w", err)
	}
	if r == nil {
		r = rng.New(0)
	}

	var nonEvidence []string
	for _, v := range bn.Variables() {
		if _, observed := e[v]; !observed {
			nonEvidence = append(nonEvidence, v)
		}
	}

	state := make(probdist.Event, len(bn.Variables()))
	for name, v := range e {
		state[name] = v
	}
	for _, z := range nonEvidence {
		vals, err := bn.VariableValues(z)
		if err != nil {
			return nil, fmt.Errorf("Gibbs(%q): %w", X, err)
		}
		pick, err := rng.Choice(vals, r)
		if err != nil {
			return nil, fmt.Errorf("Gibbs(%q): %w", X, err)
		}
		state[z] = pick
	}

	counts := make(map[probdist.Value]float64, len(domain))
	for _, v := range domain {
		counts[v] = 0
	}
	for i := 0; i < n; i++ {
		for _, z := range nonEvidence {
			v, err := markovBlanketSample(z, state, bn, r)
			if err != nil {
				return nil, fmt.Errorf("Gibbs(%q): %w", X, err)
			}
			state[z] = v
			counts[state[X]]++
		}
	}
	return counts, nil
}

// markovBlanketSample draws a value for X from P(X | mb(X)), where the
// Markov blanket — parents, children and children's other parents — takes
// its values from state. The conditional is computed in closed form as
// P(x | parents) × Π P(child=current | x, child's other parents),
// normalized over X's domain, then drawn categorically.
func markovBlanketSample(X string, state probdist.Event, bn *bayesnet.Net, r *rand.Rand) (probdist.Value, error) {
	node, err := bn.Node(X)
	if err != nil {
		return nil, err
	}
	children := bn.Children(X)

	q := probdist.New(X)
	for _, xi := range node.Values() {
		ei := state.Extend(X, xi)
		p, err := node.P(xi, state)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			cp, err := child.P(ei[child.Variable()], ei)
			if err != nil {
				return nil, err
			}
			p *= cp
		}
		q.Set(xi, p)
	}
	if err := q.Normalize(); err != nil {
		return nil, err
	}

	u := r.Float64()
	vals := node.Values()
	var cum float64
	for _, v := range vals {
		cum += q.P(v)
		if u < cum {
			return v, nil
		}
	}
	return vals[len(vals)-1], nil
}
