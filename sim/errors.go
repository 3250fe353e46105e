package sim

import "fmt"

// FormatError reports a malformed Pulseq or phantom file. It is a named
// string type so a caller can type-switch without parsing the message.
type FormatError string

func (e FormatError) Error() string { return "invalid format: " + string(e) }

// UnsupportedVersionError reports a Pulseq version outside {1.2.x, 1.4.x}.
type UnsupportedVersionError struct {
	Major, Minor, Revision int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported pulseq version %d.%d.%d", e.Major, e.Minor, e.Revision)
}

// DanglingReferenceError reports an event that references a shape/id
// not present in the file's [SHAPES] section.
type DanglingReferenceError struct {
	Kind string // "shape", "rf", "gradient", "adc", "trap", "delay"
	ID   int
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling reference: %s id %d not defined", e.Kind, e.ID)
}

// PhantomShapeMismatchError reports per-spin arrays of unequal length.
type PhantomShapeMismatchError struct {
	Field    string
	Expected int
	Got      int
}

func (e *PhantomShapeMismatchError) Error() string {
	return fmt.Sprintf("phantom shape mismatch: field %s has length %d, want %d", e.Field, e.Got, e.Expected)
}

// NumericalInstabilityError reports a NaN magnetization or divergent
// rotation detected at a given step index.
type NumericalInstabilityError struct {
	StepIndex int
	SpinIndex int
	Reason    string
}

func (e *NumericalInstabilityError) Error() string {
	return fmt.Sprintf("numerical instability at step %d, spin %d: %s", e.StepIndex, e.SpinIndex, e.Reason)
}

// BackendUnavailableError is a recovered condition: the requested backend
// was not functional and the process fell back to CPU.
type BackendUnavailableError struct {
	Requested string
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("backend %q unavailable, falling back to cpu", e.Requested)
}

// MultipleBackendsError is a recovered condition: more than one accelerator
// library appeared functional; the process fell back to CPU.
type MultipleBackendsError struct {
	Candidates []string
}

func (e *MultipleBackendsError) Error() string {
	return fmt.Sprintf("ambiguous backend selection among %v, falling back to cpu", e.Candidates)
}
