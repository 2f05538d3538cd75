// Package factor sentinel errors and the Domains capability.
package factor

import (
	"errors"

	"github.com/katalvlaran/bayes/probdist"
)

// Sentinel errors for factor algebra.
var (
	// ErrArity indicates a value tuple whose length does not match the
	// factor's variable count.
	ErrArity = errors.New("factor: value tuple does not match variable count")
	// ErrMissingEntry indicates a lookup for an assignment the table does
	// not cover.
	ErrMissingEntry = errors.New("factor: no entry for assignment")
	// ErrMultiVariable indicates a normalization attempt on a factor that
	// still ranges over more (or fewer) than one variable.
	ErrMultiVariable = errors.New("factor: normalization requires exactly one remaining variable")
)

// Domains supplies the full value domain of a variable. *bayesnet.Net
// satisfies it; tests may supply fixed maps.
type Domains interface {
	VariableValues(varname string) ([]probdist.Value, error)
}
