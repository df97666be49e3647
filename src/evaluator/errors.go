package evaluator

import "fmt"

// UndefinedVariableError is returned when the tree references a variable that
// has no binding.
type UndefinedVariableError struct {
	Name string
}

// NewUndefinedVariableError creates a new UndefinedVariableError for the
// given variable name.
func NewUndefinedVariableError(name string) error {
	return &UndefinedVariableError{Name: name}
}

func (e UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: %s", e.Name)
}

// MalformedTreeError is returned when an operator node is missing a required
// child. A correct parser never produces such trees.
type MalformedTreeError struct {
	Operator string
	Missing  string
}

// NewMalformedTreeError creates a new MalformedTreeError naming the operator
// and which operand is missing.
func NewMalformedTreeError(operator, missing string) error {
	return &MalformedTreeError{Operator: operator, Missing: missing}
}

func (e MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed tree: %s node is missing its %s operand", e.Operator, e.Missing)
}
