package bayesnet

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bayes/probdist"
)

// Row is one explicit CPT entry: the parent value tuple it is conditioned
// on, and the distribution over the node's values given those parents.
type Row struct {
	// Given holds the parent values, aligned positionally with the node's
	// parent list. Empty for a parentless node.
	Given []probdist.Value
	// Dist maps each node value to its conditional probability.
	Dist map[probdist.Value]float64
}

// TableNode is a conditional distribution P(X | parents) backed by an
// explicit table over an arbitrary finite value domain. The domain is
// derived at construction as the value set shared by every row; rows with
// differing domains are rejected.
type TableNode struct {
	variable string
	parents  []string
	rows     map[string]map[probdist.Value]float64
	domain   []probdist.Value
}

var _ Node = (*TableNode)(nil)

// NewTable builds a TableNode for variable, with space-separated parent
// names and explicit rows. Returns ErrEmptyCPT, ErrRowArity or
// ErrInconsistentDomain on malformed input.
// Complexity: O(rows × domain).
func NewTable(variable, parents string, rows []Row) (*TableNode, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewTable(%q): %w", variable, ErrEmptyCPT)
	}
	ps := splitParents(parents)

	// Domain is fixed by the first row; every other row must agree.
	domain := make([]probdist.Value, 0, len(rows[0].Dist))
	for v := range rows[0].Dist {
		domain = append(domain, v)
	}
	sort.Slice(domain, func(i, j int) bool {
		return fmt.Sprint(domain[i]) < fmt.Sprint(domain[j])
	})

	table := make(map[string]map[probdist.Value]float64, len(rows))
	for _, row := range rows {
		if len(row.Given) != len(ps) {
			return nil, fmt.Errorf("NewTable(%q): row %v: %w", variable, row.Given, ErrRowArity)
		}
		if len(row.Dist) != len(domain) {
			return nil, fmt.Errorf("NewTable(%q): row %v: %w", variable, row.Given, ErrInconsistentDomain)
		}
		dist := make(map[probdist.Value]float64, len(row.Dist))
		for _, v := range domain {
			p, ok := row.Dist[v]
			if !ok {
				return nil, fmt.Errorf("NewTable(%q): row %v: %w", variable, row.Given, ErrInconsistentDomain)
			}
			dist[v] = p
		}
		table[tupleKey(row.Given)] = dist
	}

	return &TableNode{
		variable: variable,
		parents:  ps,
		rows:     table,
		domain:   domain,
	}, nil
}

// Variable returns the node's variable name.
func (n *TableNode) Variable() string { return n.variable }

// Parents returns the ordered parent names. The slice is a copy.
func (n *TableNode) Parents() []string {
	out := make([]string, len(n.parents))
	copy(out, n.parents)
	return out
}

// Values returns the sorted value domain. The slice is a copy.
func (n *TableNode) Values() []probdist.Value {
	out := make([]probdist.Value, len(n.domain))
	copy(out, n.domain)
	return out
}

// P returns P(X=value | parents=e's parent values). Returns
// ErrUnboundVariable (wrapped) when a parent is missing from e,
// ErrMissingRow when no row covers the parent tuple, and
// ErrValueNotInDomain when value is outside the domain.
// Complexity: O(len(parents)).
func (n *TableNode) P(value probdist.Value, e probdist.Event) (float64, error) {
	vals, err := probdist.EventValues(e, n.parents)
	if err != nil {
		return 0, fmt.Errorf("TableNode.P(%q): %w", n.variable, err)
	}
	row, ok := n.rows[tupleKey(vals)]
	if !ok {
		return 0, fmt.Errorf("TableNode.P(%q): parents %v: %w", n.variable, vals, ErrMissingRow)
	}
	p, ok := row[value]
	if !ok {
		return 0, fmt.Errorf("TableNode.P(%q): value %v: %w", n.variable, value, ErrValueNotInDomain)
	}
	return p, nil
}
