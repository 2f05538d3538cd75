package bayesnet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayes/bayesnet"
	"github.com/katalvlaran/bayes/probdist"
)

// TestNewBool_PriorShorthand verifies the bare-probability shorthand
// expands to complementary true/false masses.
func TestNewBool_PriorShorthand(t *testing.T) {
	n, err := bayesnet.NewBool("Burglary", "", bayesnet.Prior(0.001))
	require.NoError(t, err)

	p, err := n.P(true, probdist.Event{})
	require.NoError(t, err)
	assert.InDelta(t, 0.001, p, 1e-12)

	p, err = n.P(false, probdist.Event{})
	require.NoError(t, err)
	assert.InDelta(t, 0.999, p, 1e-12)
}

// TestNewBool_PriorRequiresNoParents verifies the shorthand arity check.
func TestNewBool_PriorRequiresNoParents(t *testing.T) {
	_, err := bayesnet.NewBool("X", "P", bayesnet.Prior(0.2))
	assert.ErrorIs(t, err, bayesnet.ErrShorthandArity)
}

// TestNewBool_SingleParentRows verifies single-parent rows condition on
// the parent value taken from the event.
func TestNewBool_SingleParentRows(t *testing.T) {
	n, err := bayesnet.NewBool("X", "Burglary", bayesnet.Rows{"T": 0.2, "F": 0.625})
	require.NoError(t, err)

	// Extra event entries are ignored; only parents are read.
	p, err := n.P(false, probdist.Event{"Burglary": false, "Earthquake": true})
	require.NoError(t, err)
	assert.InDelta(t, 0.375, p, 1e-12)
}

// TestNewBool_TupleRows verifies multi-parent row keys.
func TestNewBool_TupleRows(t *testing.T) {
	n, err := bayesnet.NewBool("Alarm", "Burglary Earthquake", bayesnet.Rows{
		"TT": 0.95, "TF": 0.94, "FT": 0.29, "FF": 0.001,
	})
	require.NoError(t, err)

	p, err := n.P(true, probdist.Event{"Burglary": false, "Earthquake": true})
	require.NoError(t, err)
	assert.InDelta(t, 0.29, p, 1e-12)

	assert.Equal(t, []probdist.Value{false, true}, n.Values())
	assert.Equal(t, []string{"Burglary", "Earthquake"}, n.Parents())
}

// TestNewBool_Validation covers arity, key and range rejections.
func TestNewBool_Validation(t *testing.T) {
	_, err := bayesnet.NewBool("X", "P Q", bayesnet.Rows{"T": 0.5})
	assert.ErrorIs(t, err, bayesnet.ErrRowArity, "key shorter than arity")

	_, err = bayesnet.NewBool("X", "P", bayesnet.Rows{"X": 0.5})
	assert.ErrorIs(t, err, bayesnet.ErrRowKey, "non-boolean key rune")

	_, err = bayesnet.NewBool("X", "P", bayesnet.Rows{"T": 1.5, "F": 0.5})
	assert.ErrorIs(t, err, bayesnet.ErrProbRange, "probability above 1")

	_, err = bayesnet.NewBool("X", "", bayesnet.Prior(-0.1))
	assert.ErrorIs(t, err, bayesnet.ErrProbRange, "negative prior")
}

// TestBoolNode_MissingRowFails verifies a parent tuple with no row errors
// instead of defaulting.
func TestBoolNode_MissingRowFails(t *testing.T) {
	n, err := bayesnet.NewBool("X", "P", bayesnet.Rows{"T": 0.3})
	require.NoError(t, err)

	_, err = n.P(true, probdist.Event{"P": false})
	assert.ErrorIs(t, err, bayesnet.ErrMissingRow)
}

// TestBoolNode_UnboundParentFails verifies lookups require every parent
// bound in the event.
func TestBoolNode_UnboundParentFails(t *testing.T) {
	n, err := bayesnet.NewBool("X", "P", bayesnet.Rows{"T": 0.3, "F": 0.6})
	require.NoError(t, err)

	_, err = n.P(true, probdist.Event{})
	assert.ErrorIs(t, err, probdist.ErrUnboundVariable)
}

// TestNewTable_GeneralDomain verifies explicit tables over a non-boolean
// domain, with the domain derived from the rows.
func TestNewTable_GeneralDomain(t *testing.T) {
	n, err := bayesnet.NewTable("Weather", "", []bayesnet.Row{
		{Given: nil, Dist: map[probdist.Value]float64{"sun": 0.6, "rain": 0.3, "snow": 0.1}},
	})
	require.NoError(t, err)

	assert.Equal(t, []probdist.Value{"rain", "snow", "sun"}, n.Values(), "domain is sorted")

	p, err := n.P("snow", probdist.Event{})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, p, 1e-12)

	_, err = n.P("hail", probdist.Event{})
	assert.ErrorIs(t, err, bayesnet.ErrValueNotInDomain)
}

// TestNewTable_InconsistentRowsFail verifies rows must agree on the domain.
func TestNewTable_InconsistentRowsFail(t *testing.T) {
	_, err := bayesnet.NewTable("X", "P", []bayesnet.Row{
		{Given: []probdist.Value{true}, Dist: map[probdist.Value]float64{"a": 0.5, "b": 0.5}},
		{Given: []probdist.Value{false}, Dist: map[probdist.Value]float64{"a": 0.5, "c": 0.5}},
	})
	assert.ErrorIs(t, err, bayesnet.ErrInconsistentDomain)
}

// TestNewTable_RowArityChecked verifies parent tuple lengths are enforced.
func TestNewTable_RowArityChecked(t *testing.T) {
	_, err := bayesnet.NewTable("X", "P Q", []bayesnet.Row{
		{Given: []probdist.Value{true}, Dist: map[probdist.Value]float64{"a": 1}},
	})
	assert.ErrorIs(t, err, bayesnet.ErrRowArity)
}

// TestNewTable_EmptyFails verifies an empty row list is rejected.
func TestNewTable_EmptyFails(t *testing.T) {
	_, err := bayesnet.NewTable("X", "", nil)
	assert.ErrorIs(t, err, bayesnet.ErrEmptyCPT)
}
