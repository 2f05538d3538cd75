// Package exact sentinel errors and shared predicates.
package exact

import (
	"errors"

	"github.com/katalvlaran/bayes/probdist"
)

// ErrQueryInEvidence indicates a query variable that is also evidenced;
// the posterior over an observed variable is degenerate by definition and
// asking for it is treated as a caller bug.
var ErrQueryInEvidence = errors.New("exact: query variable must be distinct from evidence")

// hidden reports whether varname is a hidden variable for the given query
// set and evidence: neither queried nor evidenced.
func hidden(varname string, query []string, e probdist.Event) bool {
	for _, q := range query {
		if varname == q {
			return false
		}
	}
	_, evidenced := e[varname]
	return !evidenced
}
