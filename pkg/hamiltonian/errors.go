package hamiltonian

import (
	"errors"
	"fmt"
)

// ErrNotImplemented marks a Source capability that was left on the embedded
// Unimplemented base instead of being provided by the embedder. Always a
// programming error, never retryable.
var ErrNotImplemented = errors.New("hamiltonian: not implemented by source")

// ValidationError reports that verification of the parameters or the source
// failed. The wrapped error carries the reason.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "hamiltonian: verify: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ParameterError reports a configured value that no dispatch branch accepts.
// It names the parameter, the configuration type carrying it, the offending
// value, and the call site, matching the diagnostics a misconfigured
// transformation should produce.
type ParameterError struct {
	Name       string
	Type       string
	Value      string
	CalledFrom string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("hamiltonian: parameter %q of %s: unrecognized value %q (from %s)",
		e.Name, e.Type, e.Value, e.CalledFrom)
}
