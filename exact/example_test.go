package exact_test

import (
	"fmt"

	"github.com/katalvlaran/bayes/bayesnet"
	"github.com/katalvlaran/bayes/exact"
	"github.com/katalvlaran/bayes/probdist"
)

// ExampleEnumerationAsk answers the textbook query "how likely was a
// burglary, given that both neighbors called?" on the alarm network.
func ExampleEnumerationAsk() {
	burglary, _ := bayesnet.NewBool("Burglary", "", bayesnet.Prior(0.001))
	earthquake, _ := bayesnet.NewBool("Earthquake", "", bayesnet.Prior(0.002))
	alarm, _ := bayesnet.NewBool("Alarm", "Burglary Earthquake", bayesnet.Rows{
		"TT": 0.95, "TF": 0.94, "FT": 0.29, "FF": 0.001,
	})
	john, _ := bayesnet.NewBool("JohnCalls", "Alarm", bayesnet.Rows{"T": 0.90, "F": 0.05})
	mary, _ := bayesnet.NewBool("MaryCalls", "Alarm", bayesnet.Rows{"T": 0.70, "F": 0.01})
	net, err := bayesnet.New(burglary, earthquake, alarm, john, mary)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, err := exact.EnumerationAsk("Burglary",
		probdist.Event{"JohnCalls": true, "MaryCalls": true}, net)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d.Approx())
	// Output:
	// false: 0.716, true: 0.284
}

// ExampleEliminationAsk runs the same query by variable elimination; the
// exact methods always agree.
func ExampleEliminationAsk() {
	cloudy, _ := bayesnet.NewBool("Cloudy", "", bayesnet.Prior(0.5))
	sprinkler, _ := bayesnet.NewBool("Sprinkler", "Cloudy", bayesnet.Rows{"T": 0.10, "F": 0.50})
	rain, _ := bayesnet.NewBool("Rain", "Cloudy", bayesnet.Rows{"T": 0.80, "F": 0.20})
	wet, _ := bayesnet.NewBool("WetGrass", "Sprinkler Rain", bayesnet.Rows{
		"TT": 0.99, "TF": 0.90, "FT": 0.90, "FF": 0.00,
	})
	net, err := bayesnet.New(cloudy, sprinkler, rain, wet)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, err := exact.EliminationAsk("Rain", probdist.Event{"WetGrass": true}, net)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d.Approx())
	// Output:
	// false: 0.292, true: 0.708
}
