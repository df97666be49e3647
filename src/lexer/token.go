package lexer

import "strconv"

type TokenType int

const (
	EOF TokenType = iota
	Literal
	Variable
	Equivalence
	Implication
	Or
	And
	Not
	ParenOpen
	ParenClose
	Assign
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Literal:
		return "Literal"
	case Variable:
		return "Variable"
	case Equivalence:
		return "Equivalence"
	case Implication:
		return "Implication"
	case Or:
		return "Or"
	case And:
		return "And"
	case Not:
		return "Not"
	case ParenOpen:
		return "ParenOpen"
	case ParenClose:
		return "ParenClose"
	case Assign:
		return "Assign"
	default:
		return "Unknown"
	}
}

// Token is one lexical unit of a statement. Value is only meaningful for
// Literal tokens and Name only for Variable tokens.
type Token struct {
	Type  TokenType
	Value bool
	Name  string
}

// IsOperator reports whether the token takes part in expression structure
// rather than carrying a value.
func (t Token) IsOperator() bool {
	switch t.Type {
	case Equivalence, Implication, Or, And, Not, ParenOpen, ParenClose, Assign:
		return true
	default:
		return false
	}
}

// String renders the token the way it is labeled in tree visualizations:
// literals as true/false, variables by name, operators by their type name.
func (t Token) String() string {
	switch t.Type {
	case Literal:
		return strconv.FormatBool(t.Value)
	case Variable:
		return t.Name
	default:
		return t.Type.String()
	}
}
