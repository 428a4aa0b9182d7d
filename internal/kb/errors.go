package kb

import "fmt"

// KbError is a semantic rejection by the knowledge base: a cyclic
// preference, an inconsistent pair of strict proofs, or a defeasible rule
// name reused with a different body. Grounded on internal/tqerrors'
// interpreterError shape (a message plus an optional wrapped cause).
type KbError struct {
	Message string
	Wrap    error
}

func (e *KbError) Error() string {
	if e.Wrap != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Wrap)
	}
	return e.Message
}

// Unwrap gives the error KbError wraps, if any.
func (e *KbError) Unwrap() error {
	return e.Wrap
}

func newKbError(format string, a ...interface{}) *KbError {
	return &KbError{Message: fmt.Sprintf(format, a...)}
}

func wrapKbError(wrap error, format string, a ...interface{}) *KbError {
	return &KbError{Message: fmt.Sprintf(format, a...), Wrap: wrap}
}
