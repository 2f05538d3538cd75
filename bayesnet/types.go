// Package bayesnet sentinel errors and the Node capability interface.
package bayesnet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/bayes/probdist"
)

// Sentinel errors for network construction and lookup.
var (
	// ErrDuplicateVariable indicates the node's variable is already in the net.
	ErrDuplicateVariable = errors.New("bayesnet: variable already present in network")
	// ErrUnknownParent indicates a parent variable not yet added to the net.
	ErrUnknownParent = errors.New("bayesnet: parent not present in network")
	// ErrUnknownVariable indicates a lookup for a variable absent from the net.
	ErrUnknownVariable = errors.New("bayesnet: no such variable")
	// ErrEmptyCPT indicates a node constructed with no table rows.
	ErrEmptyCPT = errors.New("bayesnet: conditional probability table has no rows")
	// ErrRowArity indicates a row whose parent tuple does not match the parent count.
	ErrRowArity = errors.New("bayesnet: row parent tuple does not match parent arity")
	// ErrInconsistentDomain indicates CPT rows that disagree on the value domain.
	ErrInconsistentDomain = errors.New("bayesnet: table rows disagree on value domain")
	// ErrRowKey indicates a boolean row key containing a rune other than 'T' or 'F'.
	ErrRowKey = errors.New("bayesnet: boolean row key must contain only 'T' and 'F'")
	// ErrProbRange indicates a probability outside [0,1].
	ErrProbRange = errors.New("bayesnet: probability outside [0,1]")
	// ErrShorthandArity indicates a Prior shorthand used for a node with parents.
	ErrShorthandArity = errors.New("bayesnet: bare-probability shorthand requires a parentless node")
	// ErrMissingRow indicates a conditional lookup for a parent tuple with no row.
	ErrMissingRow = errors.New("bayesnet: no table row for parent values")
	// ErrValueNotInDomain indicates a conditional lookup for a value the node
	// does not range over.
	ErrValueNotInDomain = errors.New("bayesnet: value outside node domain")
)

// Node is the capability a conditional distribution P(X | parents) exposes
// to inference. Implementations are selected at construction time:
// TableNode for explicit per-value tables, BoolNode for boolean shorthands.
type Node interface {
	// Variable returns the name of the node's random variable.
	Variable() string
	// Parents returns the ordered parent variable names.
	Parents() []string
	// Values returns the node's sorted value domain.
	Values() []probdist.Value
	// P returns P(X=value | parents), taking parent values from e.
	// Every parent must be bound in e.
	P(value probdist.Value, e probdist.Event) (float64, error)
}

// splitParents normalizes a space-separated parent specification into a
// name list. An empty or blank string means no parents.
func splitParents(parents string) []string {
	return strings.Fields(parents)
}

// tupleKey encodes a parent value tuple as a table key.
func tupleKey(vals []probdist.Value) string {
	var b strings.Builder
	for _, v := range vals {
		fmt.Fprintf(&b, "%#v\x1f", v)
	}
	return b.String()
}
