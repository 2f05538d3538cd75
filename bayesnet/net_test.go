package bayesnet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayes/bayesnet"
	"github.com/katalvlaran/bayes/probdist"
)

// mustBool is a test helper building a boolean node or failing the test.
func mustBool(t *testing.T, variable, parents string, cpt bayesnet.BoolCPT) *bayesnet.BoolNode {
	t.Helper()
	n, err := bayesnet.NewBool(variable, parents, cpt)
	require.NoError(t, err)
	return n
}

// TestNet_AddMaintainsOrderAndChildren verifies declaration order,
// lookups and reverse edges.
func TestNet_AddMaintainsOrderAndChildren(t *testing.T) {
	net, err := bayesnet.New(
		mustBool(t, "Cloudy", "", bayesnet.Prior(0.5)),
		mustBool(t, "Sprinkler", "Cloudy", bayesnet.Rows{"T": 0.10, "F": 0.50}),
		mustBool(t, "Rain", "Cloudy", bayesnet.Rows{"T": 0.80, "F": 0.20}),
		mustBool(t, "WetGrass", "Sprinkler Rain", bayesnet.Rows{
			"TT": 0.99, "TF": 0.90, "FT": 0.90, "FF": 0.00,
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"Cloudy", "Sprinkler", "Rain", "WetGrass"}, net.Variables())

	node, err := net.Node("Rain")
	require.NoError(t, err)
	assert.Equal(t, "Rain", node.Variable())

	kids := net.Children("Cloudy")
	require.Len(t, kids, 2)
	assert.Equal(t, "Sprinkler", kids[0].Variable())
	assert.Equal(t, "Rain", kids[1].Variable())
	assert.Empty(t, net.Children("WetGrass"))
}

// TestNet_AddRejectsUnknownParent verifies the topological invariant.
func TestNet_AddRejectsUnknownParent(t *testing.T) {
	_, err := bayesnet.New(
		mustBool(t, "Sprinkler", "Cloudy", bayesnet.Rows{"T": 0.10, "F": 0.50}),
	)
	assert.ErrorIs(t, err, bayesnet.ErrUnknownParent)
}

// TestNet_AddRejectsDuplicateVariable verifies re-adding a variable fails.
func TestNet_AddRejectsDuplicateVariable(t *testing.T) {
	net, err := bayesnet.New(mustBool(t, "Cloudy", "", bayesnet.Prior(0.5)))
	require.NoError(t, err)

	err = net.Add(mustBool(t, "Cloudy", "", bayesnet.Prior(0.4)))
	assert.ErrorIs(t, err, bayesnet.ErrDuplicateVariable)
}

// TestNet_UnknownVariableLookupFails verifies Node and VariableValues fail
// deterministically for absent variables.
func TestNet_UnknownVariableLookupFails(t *testing.T) {
	net, err := bayesnet.New(mustBool(t, "Cloudy", "", bayesnet.Prior(0.5)))
	require.NoError(t, err)

	_, err = net.Node("Rain")
	assert.ErrorIs(t, err, bayesnet.ErrUnknownVariable)

	_, err = net.VariableValues("Rain")
	assert.ErrorIs(t, err, bayesnet.ErrUnknownVariable)
}

// TestNet_VariableValues verifies domains come from the node.
func TestNet_VariableValues(t *testing.T) {
	net, err := bayesnet.New(mustBool(t, "Cloudy", "", bayesnet.Prior(0.5)))
	require.NoError(t, err)

	vals, err := net.VariableValues("Cloudy")
	require.NoError(t, err)
	assert.Equal(t, []probdist.Value{false, true}, vals)
}
