package exact_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayes/bayesnet"
)

// burglaryNet builds the classic five-node alarm network (AIMA Fig 14.2).
func burglaryNet(t *testing.T) *bayesnet.Net {
	t.Helper()
	net, err := bayesnet.New(
		boolNode(t, "Burglary", "", bayesnet.Prior(0.001)),
		boolNode(t, "Earthquake", "", bayesnet.Prior(0.002)),
		boolNode(t, "Alarm", "Burglary Earthquake", bayesnet.Rows{
			"TT": 0.95, "TF": 0.94, "FT": 0.29, "FF": 0.001,
		}),
		boolNode(t, "JohnCalls", "Alarm", bayesnet.Rows{"T": 0.90, "F": 0.05}),
		boolNode(t, "MaryCalls", "Alarm", bayesnet.Rows{"T": 0.70, "F": 0.01}),
	)
	require.NoError(t, err)
	return net
}

// sprinklerNet builds the cloudy/sprinkler/rain/wet-grass network
// (AIMA Fig 14.12a).
func sprinklerNet(t *testing.T) *bayesnet.Net {
	t.Helper()
	net, err := bayesnet.New(
		boolNode(t, "Cloudy", "", bayesnet.Prior(0.5)),
		boolNode(t, "Sprinkler", "Cloudy", bayesnet.Rows{"T": 0.10, "F": 0.50}),
		boolNode(t, "Rain", "Cloudy", bayesnet.Rows{"T": 0.80, "F": 0.20}),
		boolNode(t, "WetGrass", "Sprinkler Rain", bayesnet.Rows{
			"TT": 0.99, "TF": 0.90, "FT": 0.90, "FF": 0.00,
		}),
	)
	require.NoError(t, err)
	return net
}

func boolNode(t *testing.T, variable, parents string, cpt bayesnet.BoolCPT) *bayesnet.BoolNode {
	t.Helper()
	n, err := bayesnet.NewBool(variable, parents, cpt)
	require.NoError(t, err)
	return n
}
