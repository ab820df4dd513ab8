package model

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// Sentinel error kinds returned by the evaluator and registry. Callers match
// them with errors.Is after unwrapping any eris context.
var (
	// ErrInvalidTemperature is returned when a temperature at or below 0 K is
	// supplied to an evaluation containing a logarithmic term.
	ErrInvalidTemperature = eris.New("invalid temperature")

	// ErrUnsupportedGasSystem is returned for a gas-ratio variant outside the
	// closed GasSystem set.
	ErrUnsupportedGasSystem = eris.New("unsupported gas system")

	// ErrUnparsableFormula is returned when stoichiometry extraction cannot
	// match the chemical-formula grammar.
	ErrUnparsableFormula = eris.New("unparsable formula")

	// ErrMissingCoefficients is returned when a compound selected for
	// temperature-dependent evaluation carries no polynomial fit.
	ErrMissingCoefficients = eris.New("missing polynomial coefficients")

	// ErrCompoundNotFound is returned by registry lookups.
	ErrCompoundNotFound = eris.New("compound not found")
)

// FieldError describes a single failed invariant on a compound record.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every invariant a custom compound registration
// violated. It never carries partial state: registration either applies the
// whole record or leaves the registry untouched.
type ValidationError struct {
	Name   string       `json:"name"`
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("compound %q invalid: %s", e.Name, strings.Join(msgs, "; "))
}

// Add records a failed invariant.
func (e *ValidationError) Add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Empty reports whether no invariants failed.
func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }
