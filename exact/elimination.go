package exact

import (
	"fmt"

	"github.com/katalvlaran/bayes/bayesnet"
	"github.com/katalvlaran/bayes/factor"
	"github.com/katalvlaran/bayes/probdist"
)

// EliminationAsk returns the distribution of X given evidence e in the
// network bn, by variable elimination. Variables are visited in reverse
// declaration order; each contributes its CPT factor restricted against
// e, and hidden variables are eliminated on the spot by multiplying every
// factor that mentions them and summing them out. The surviving factors
// are multiplied and normalized over X.
//
// Elimination order is exactly the reverse of the declaration order — a
// deliberate simplicity choice that keeps results reproducible.
// Complexity: O(d^w), w = induced width under that order.
func EliminationAsk(X string, e probdist.Event, bn *bayesnet.Net) (*probdist.Dist, error) {
	if _, observed := e[X]; observed {
		return nil, fmt.Errorf("EliminationAsk(%q): %w", X, ErrQueryInEvidence)
	}
	if _, err := bn.Node(X); err != nil {
		return nil, fmt.Errorf("EliminationAsk: %w", err)
	}

	var factors []*factor.Factor
	variables := bn.Variables()
	for i := len(variables) - 1; i >= 0; i-- {
		v := variables[i]
		f, err := makeFactor(v, e, bn)
		if err != nil {
			return nil, fmt.Errorf("EliminationAsk(%q): %w", X, err)
		}
		factors = append(factors, f)
		if hidden(v, []string{X}, e) {
			factors, err = eliminate(v, factors, bn)
			if err != nil {
				return nil, fmt.Errorf("EliminationAsk(%q): %w", X, err)
			}
		}
	}

	residual, err := pointwiseProduct(factors, bn)
	if err != nil {
		return nil, fmt.Errorf("EliminationAsk(%q): %w", X, err)
	}
	d, err := residual.Normalize()
	if err != nil {
		return nil, fmt.Errorf("EliminationAsk(%q): %w", X, err)
	}
	return d, nil
}

// makeFactor builds varname's factor in bn's joint distribution given e:
// the node's CPT projected so evidenced variables are fixed and dropped
// from the factor's variable set.
func makeFactor(varname string, e probdist.Event, bn *bayesnet.Net) (*factor.Factor, error) {
	node, err := bn.Node(varname)
	if err != nil {
		return nil, err
	}
	var variables []string
	for _, v := range append([]string{varname}, node.Parents()...) {
		if _, observed := e[v]; !observed {
			variables = append(variables, v)
		}
	}

	f := factor.New(variables...)
	events, err := factor.AllEvents(variables, bn, e)
	if err != nil {
		return nil, err
	}
	for _, ev := range events {
		p, err := node.P(ev[varname], ev)
		if err != nil {
			return nil, err
		}
		vals, err := probdist.EventValues(ev, variables)
		if err != nil {
			return nil, err
		}
		if err := f.Set(p, vals...); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// eliminate sums varname out of the factor set: every factor mentioning
// it is multiplied into one, which is then reduced; the rest pass through.
func eliminate(varname string, factors []*factor.Factor, bn *bayesnet.Net) ([]*factor.Factor, error) {
	var keep, involved []*factor.Factor
	for _, f := range factors {
		if f.Mentions(varname) {
			involved = append(involved, f)
		} else {
			keep = append(keep, f)
		}
	}
	prod, err := pointwiseProduct(involved, bn)
	if err != nil {
		return nil, err
	}
	reduced, err := prod.SumOut(varname, bn)
	if err != nil {
		return nil, err
	}
	return append(keep, reduced), nil
}

// pointwiseProduct folds a non-empty factor list into one.
func pointwiseProduct(factors []*factor.Factor, bn *bayesnet.Net) (*factor.Factor, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("pointwiseProduct: empty factor list")
	}
	prod := factors[0]
	for _, f := range factors[1:] {
		var err error
		prod, err = prod.PointwiseProduct(f, bn)
		if err != nil {
			return nil, err
		}
	}
	return prod, nil
}
