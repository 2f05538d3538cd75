// Package sampling sentinel errors and shared sampling helpers.
package sampling

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bayes/bayesnet"
	"github.com/katalvlaran/bayes/probdist"
)

// Sentinel errors for the sampling estimators.
var (
	// ErrSampleCount indicates a non-positive sample budget.
	ErrSampleCount = errors.New("sampling: sample count must be positive")
	// ErrQueryInEvidence indicates a query variable that is also evidenced.
	ErrQueryInEvidence = errors.New("sampling: query variable must be distinct from evidence")
)

// sampleNode draws a value for node from P(X | e) by walking the domain's
// cumulative mass. e must bind every parent.
// Complexity: O(domain).
func sampleNode(node bayesnet.Node, e probdist.Event, r *rand.Rand) (probdist.Value, error) {
	vals := node.Values()
	u := r.Float64()
	var cum float64
	for _, v := range vals {
		p, err := node.P(v, e)
		if err != nil {
			return nil, fmt.Errorf("sampleNode(%q): %w", node.Variable(), err)
		}
		cum += p
		if u < cum {
			return v, nil
		}
	}
	// Rounding left u just past the accumulated mass; the last value takes
	// the remainder.
	return vals[len(vals)-1], nil
}

// consistent reports whether the sampled event agrees with the evidence
// on every evidenced variable.
func consistent(event, evidence probdist.Event) bool {
	for name, want := range evidence {
		if got, ok := event[name]; ok && got != want {
			return false
		}
	}
	return true
}
