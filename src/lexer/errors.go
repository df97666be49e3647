package lexer

import "fmt"

// UnexpectedCharError is returned when the input contains a character that
// cannot start any token.
type UnexpectedCharError struct {
	Char byte
}

// NewUnexpectedCharError creates a new UnexpectedCharError for the given character.
func NewUnexpectedCharError(char byte) error {
	return &UnexpectedCharError{Char: char}
}

func (e UnexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected character %q", string(e.Char))
}

// IncompleteOperatorError is returned when the start of a multi-character
// operator is not followed by the rest of it, e.g. `<` without `=>`.
type IncompleteOperatorError struct {
	Got  string
	Want string
}

// NewIncompleteOperatorError creates a new IncompleteOperatorError with what
// was read and the operator it should have formed.
func NewIncompleteOperatorError(got, want string) error {
	return &IncompleteOperatorError{Got: got, Want: want}
}

func (e IncompleteOperatorError) Error() string {
	return fmt.Sprintf("incomplete operator %q, expected %q", e.Got, e.Want)
}
