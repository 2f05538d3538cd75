package exact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayes/bayesnet"
	"github.com/katalvlaran/bayes/exact"
	"github.com/katalvlaran/bayes/probdist"
)

// TestEnumerateJointAsk_Doctest mirrors the reference joint-table query:
// a three-value X conditioned on Y=1.
func TestEnumerateJointAsk_Doctest(t *testing.T) {
	P := probdist.NewJoint("X", "Y")
	require.NoError(t, P.Set(0.25, 0, 0))
	require.NoError(t, P.Set(0.5, 0, 1))
	require.NoError(t, P.Set(0.125, 1, 1))
	require.NoError(t, P.Set(0.125, 2, 1))

	d, err := exact.EnumerateJointAsk("X", probdist.Event{"Y": 1}, P)
	require.NoError(t, err)
	assert.Equal(t, "0: 0.667, 1: 0.167, 2: 0.167", d.Approx())
}

// TestEnumerateJointAsk_QueryInEvidence verifies the precondition.
func TestEnumerateJointAsk_QueryInEvidence(t *testing.T) {
	P := probdist.NewJoint("X", "Y")
	require.NoError(t, P.Set(1, 0, 0))

	_, err := exact.EnumerateJointAsk("X", probdist.Event{"X": 0}, P)
	assert.ErrorIs(t, err, exact.ErrQueryInEvidence)
}

// TestEnumerationAsk_Burglary verifies the canonical alarm-network
// posterior P(Burglary | JohnCalls, MaryCalls).
func TestEnumerationAsk_Burglary(t *testing.T) {
	net := burglaryNet(t)
	e := probdist.Event{"JohnCalls": true, "MaryCalls": true}

	d, err := exact.EnumerationAsk("Burglary", e, net)
	require.NoError(t, err)

	assert.InDelta(t, 0.716, d.P(false), 5e-4)
	assert.InDelta(t, 0.284, d.P(true), 5e-4)
	assert.Equal(t, "false: 0.716, true: 0.284", d.Approx())
}

// TestEliminationAsk_Burglary verifies variable elimination reproduces
// the same posterior.
func TestEliminationAsk_Burglary(t *testing.T) {
	net := burglaryNet(t)
	e := probdist.Event{"JohnCalls": true, "MaryCalls": true}

	d, err := exact.EliminationAsk("Burglary", e, net)
	require.NoError(t, err)

	assert.InDelta(t, 0.716, d.P(false), 5e-4)
	assert.InDelta(t, 0.284, d.P(true), 5e-4)
}

// TestExactMethods_CrossConsistent verifies enumeration and elimination
// agree on every query/evidence pair tried, on both fixture networks.
func TestExactMethods_CrossConsistent(t *testing.T) {
	cases := []struct {
		name  string
		net   *bayesnet.Net
		query string
		e     probdist.Event
	}{
		{"alarm posterior", burglaryNet(t), "Burglary", probdist.Event{"JohnCalls": true, "MaryCalls": true}},
		{"alarm from earthquake", burglaryNet(t), "JohnCalls", probdist.Event{"Earthquake": true}},
		{"alarm no evidence", burglaryNet(t), "Alarm", probdist.Event{}},
		{"alarm mixed evidence", burglaryNet(t), "Earthquake", probdist.Event{"Burglary": false, "MaryCalls": true}},
		{"sprinkler given wet", sprinklerNet(t), "Cloudy", probdist.Event{"WetGrass": true}},
		{"rain given sprinkler", sprinklerNet(t), "Rain", probdist.Event{"Sprinkler": true, "WetGrass": true}},
		{"wet grass prior", sprinklerNet(t), "WetGrass", probdist.Event{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			en, err := exact.EnumerationAsk(tc.query, tc.e, tc.net)
			require.NoError(t, err)
			el, err := exact.EliminationAsk(tc.query, tc.e, tc.net)
			require.NoError(t, err)

			for _, v := range en.Values() {
				assert.InDelta(t, en.P(v), el.P(v), 1e-9,
					"exact methods must agree on %v", v)
			}
		})
	}
}

// TestAsk_PosteriorSumsToOne verifies the normalization invariant on the
// returned distributions.
func TestAsk_PosteriorSumsToOne(t *testing.T) {
	net := burglaryNet(t)
	d, err := exact.EnumerationAsk("Alarm", probdist.Event{"JohnCalls": true}, net)
	require.NoError(t, err)

	var total float64
	for _, v := range d.Values() {
		total += d.P(v)
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

// TestAsk_FailsDeterministically verifies precondition violations error
// instead of answering.
func TestAsk_FailsDeterministically(t *testing.T) {
	net := burglaryNet(t)

	_, err := exact.EnumerationAsk("Burglary", probdist.Event{"Burglary": true}, net)
	assert.ErrorIs(t, err, exact.ErrQueryInEvidence)

	_, err = exact.EliminationAsk("Burglary", probdist.Event{"Burglary": true}, net)
	assert.ErrorIs(t, err, exact.ErrQueryInEvidence)

	_, err = exact.EnumerationAsk("Nessie", probdist.Event{}, net)
	assert.ErrorIs(t, err, bayesnet.ErrUnknownVariable)

	_, err = exact.EliminationAsk("Nessie", probdist.Event{}, net)
	assert.ErrorIs(t, err, bayesnet.ErrUnknownVariable)
}
