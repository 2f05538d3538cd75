package bayesnet

import (
	"fmt"

	"github.com/katalvlaran/bayes/probdist"
)

// BoolCPT is the closed set of boolean-table shorthands accepted by
// NewBool. Each variant expands once, at construction, into the canonical
// {parent tuple → {true: p, false: 1−p}} table; the inference path never
// sees the shorthand again.
//
// Variants:
//   - Prior — a bare P(X=true) for a parentless variable.
//   - Rows  — per-parent-tuple P(X=true), keyed by a string holding one
//     'T' or 'F' per parent ("T", "TF", ...). A single-parent table is
//     just Rows with one-rune keys; a parentless table is Rows{"": p}.
type BoolCPT interface {
	expand(arity int) (map[string]float64, error)
}

// Prior is the bare-probability shorthand: P(X=true) for a node with no
// parents.
type Prior float64

// Rows maps a parent value key to P(X=true | parents). The key spells the
// parent boolean tuple positionally, 'T' for true and 'F' for false.
type Rows map[string]float64

func (p Prior) expand(arity int) (map[string]float64, error) {
	if arity != 0 {
		return nil, ErrShorthandArity
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%v: %w", float64(p), ErrProbRange)
	}
	return map[string]float64{"": float64(p)}, nil
}

func (r Rows) expand(arity int) (map[string]float64, error) {
	out := make(map[string]float64, len(r))
	for key, p := range r {
		if len(key) != arity {
			return nil, fmt.Errorf("row %q: %w", key, ErrRowArity)
		}
		for _, c := range key {
			if c != 'T' && c != 'F' {
				return nil, fmt.Errorf("row %q: %w", key, ErrRowKey)
			}
		}
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("row %q: %v: %w", key, p, ErrProbRange)
		}
		out[key] = p
	}
	return out, nil
}

// BoolNode is the boolean specialization of a conditional distribution:
// P(X=true | parents) per parent tuple, with P(X=false) implied as the
// complement.
type BoolNode struct {
	variable string
	parents  []string
	rows     map[string]float64 // parent key → P(true)
}

var _ Node = (*BoolNode)(nil)

// boolDomain is the shared domain of every BoolNode, sorted as Values
// reports it (false before true).
var boolDomain = []probdist.Value{false, true}

// NewBool builds a boolean node for variable with space-separated parent
// names and one of the BoolCPT shorthands.
//
// Example:
//
//	alarm, err := bayesnet.NewBool("Alarm", "Burglary Earthquake", bayesnet.Rows{
//		"TT": 0.95, "TF": 0.94, "FT": 0.29, "FF": 0.001,
//	})
func NewBool(variable, parents string, cpt BoolCPT) (*BoolNode, error) {
	ps := splitParents(parents)
	rows, err := cpt.expand(len(ps))
	if err != nil {
		return nil, fmt.Errorf("NewBool(%q): %w", variable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewBool(%q): %w", variable, ErrEmptyCPT)
	}
	return &BoolNode{variable: variable, parents: ps, rows: rows}, nil
}

// Variable returns the node's variable name.
func (n *BoolNode) Variable() string { return n.variable }

// Parents returns the ordered parent names. The slice is a copy.
func (n *BoolNode) Parents() []string {
	out := make([]string, len(n.parents))
	copy(out, n.parents)
	return out
}

// Values returns {false, true}.
func (n *BoolNode) Values() []probdist.Value {
	out := make([]probdist.Value, len(boolDomain))
	copy(out, boolDomain)
	return out
}

// P returns P(X=value | parents=e's parent values). value must be a bool;
// each parent's value in e must be a bool.
// Complexity: O(len(parents)).
func (n *BoolNode) P(value probdist.Value, e probdist.Event) (float64, error) {
	want, ok := value.(bool)
	if !ok {
		return 0, fmt.Errorf("BoolNode.P(%q): value %v: %w", n.variable, value, ErrValueNotInDomain)
	}
	key := make([]byte, len(n.parents))
	for i, parent := range n.parents {
		v, bound := e[parent]
		if !bound {
			return 0, fmt.Errorf("BoolNode.P(%q): parent %q: %w", n.variable, parent, probdist.ErrUnboundVariable)
		}
		b, isBool := v.(bool)
		if !isBool {
			return 0, fmt.Errorf("BoolNode.P(%q): parent %q value %v: %w", n.variable, parent, v, ErrRowKey)
		}
		if b {
			key[i] = 'T'
		} else {
			key[i] = 'F'
		}
	}
	pTrue, ok := n.rows[string(key)]
	if !ok {
		return 0, fmt.Errorf("BoolNode.P(%q): parents %q: %w", n.variable, key, ErrMissingRow)
	}
	if want {
		return pTrue, nil
	}
	return 1 - pTrue, nil
}
