package factor

import (
	"fmt"

	"github.com/katalvlaran/bayes/probdist"
)

// AllEvents returns every way of extending base with values for the given
// variables, enumerating each variable's full domain from dom. Variables
// already bound in base keep their bound value. The traversal is an
// explicit depth-first walk with copy-on-extend accumulators, so returned
// events never alias base or each other.
// Complexity: O(d^len(variables)) events.
func AllEvents(variables []string, dom Domains, base probdist.Event) ([]probdist.Event, error) {
	root := make(probdist.Event, len(base)+len(variables))
	for k, v := range base {
		root[k] = v
	}
	events := []probdist.Event{root}
	for _, varname := range variables {
		if _, bound := base[varname]; bound {
			continue
		}
		domain, err := dom.VariableValues(varname)
		if err != nil {
			return nil, fmt.Errorf("AllEvents: %w", err)
		}
		next := make([]probdist.Event, 0, len(events)*len(domain))
		for _, ev := range events {
			for _, val := range domain {
				next = append(next, ev.Extend(varname, val))
			}
		}
		events = next
	}
	return events, nil
}
