package bayesnet

import (
	"fmt"

	"github.com/katalvlaran/bayes/probdist"
)

// Net is an ordered collection of nodes in which every node's parents
// appear earlier than the node itself. The invariant is enforced at Add
// time, so Variables() is always a topological order and ancestral
// traversals need no extra sorting. Reverse parent→child edges are
// maintained for Markov-blanket computation.
type Net struct {
	nodes    []Node
	index    map[string]Node
	children map[string][]Node
}

// New builds a network from nodes in declaration order. Parents must
// precede children; the first violation aborts construction.
func New(nodes ...Node) (*Net, error) {
	net := &Net{
		index:    make(map[string]Node),
		children: make(map[string][]Node),
	}
	for _, node := range nodes {
		if err := net.Add(node); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}
	return net, nil
}

// Add appends node to the network. Its parents must already be present
// (ErrUnknownParent) and its variable must not be (ErrDuplicateVariable).
// The node is registered as a child of each parent.
// Complexity: O(len(parents)).
func (n *Net) Add(node Node) error {
	name := node.Variable()
	if _, dup := n.index[name]; dup {
		return fmt.Errorf("Add(%q): %w", name, ErrDuplicateVariable)
	}
	for _, parent := range node.Parents() {
		if _, ok := n.index[parent]; !ok {
			return fmt.Errorf("Add(%q): parent %q: %w", name, parent, ErrUnknownParent)
		}
	}
	n.nodes = append(n.nodes, node)
	n.index[name] = node
	for _, parent := range node.Parents() {
		n.children[parent] = append(n.children[parent], node)
	}
	return nil
}

// Node returns the node for varname, or ErrUnknownVariable.
func (n *Net) Node(varname string) (Node, error) {
	node, ok := n.index[varname]
	if !ok {
		return nil, fmt.Errorf("Node(%q): %w", varname, ErrUnknownVariable)
	}
	return node, nil
}

// Nodes returns the nodes in declaration (topological) order.
// The slice is a copy.
func (n *Net) Nodes() []Node {
	out := make([]Node, len(n.nodes))
	copy(out, n.nodes)
	return out
}

// Variables returns the variable names in declaration (topological) order.
// The slice is a copy.
func (n *Net) Variables() []string {
	out := make([]string, len(n.nodes))
	for i, node := range n.nodes {
		out[i] = node.Variable()
	}
	return out
}

// VariableValues returns varname's value domain, or ErrUnknownVariable.
// Satisfies factor.Domains.
func (n *Net) VariableValues(varname string) ([]probdist.Value, error) {
	node, err := n.Node(varname)
	if err != nil {
		return nil, err
	}
	return node.Values(), nil
}

// Children returns the nodes that list varname as a parent, in the order
// they were added. The slice is a copy; unknown variables have none.
func (n *Net) Children(varname string) []Node {
	kids := n.children[varname]
	out := make([]Node, len(kids))
	copy(out, kids)
	return out
}
