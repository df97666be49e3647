package parser

import "fmt"

// SyntaxError is returned when the token sequence does not form a valid
// statement.
type SyntaxError struct {
	Message string
}

// NewSyntaxError creates a new SyntaxError with the given message.
func NewSyntaxError(format string, a ...any) error {
	return &SyntaxError{Message: fmt.Sprintf(format, a...)}
}

func (e SyntaxError) Error() string {
	return "syntax error: " + e.Message
}

// UndefinedAssignmentError is returned when the right-hand side of an
// assignment names a variable that has no binding yet.
type UndefinedAssignmentError struct {
	Target string
	Source string
}

// NewUndefinedAssignmentError creates a new UndefinedAssignmentError for the
// assignment `target := source`.
func NewUndefinedAssignmentError(target, source string) error {
	return &UndefinedAssignmentError{Target: target, Source: source}
}

func (e UndefinedAssignmentError) Error() string {
	return fmt.Sprintf("cannot assign %s to %s: %s has no value", e.Source, e.Target, e.Source)
}
