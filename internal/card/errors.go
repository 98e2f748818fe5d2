package card

import "fmt"

// ParseError is raised when an action or hand payload cannot be parsed:
// an unknown token, a rank exceeding 4 copies (or deck copies, for hands),
// or an empty hand where PASS was rejected.
type ParseError struct {
	Field   string
	Message string
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newParseError(field, format string, args ...any) *ParseError {
	return &ParseError{Field: field, Message: fmt.Sprintf(format, args...)}
}
