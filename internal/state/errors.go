package state

import "fmt"

// ValidationError marks a rejected action or malformed initial config —
// always the caller's fault, never an engine bug.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
