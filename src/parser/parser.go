// Package parser builds an expression tree from the token stream using a
// shunting-yard pass that reduces directly to tree nodes instead of a postfix
// queue. Assignment statements (`name := value`) preceding the expression are
// folded into a Bindings table and leave no trace in the tree.
package parser

import (
	"fmt"

	"github.com/eriklarko/logic-solver/src/lexer"
)

// precedence ranks operators by binding strength. Higher values bind tighter
// and are reduced first. Kept as an explicit table so reordering the token
// type constants cannot change parsing behavior.
var precedence = map[lexer.TokenType]int{
	lexer.Equivalence: 1,
	lexer.Implication: 2,
	lexer.Or:          3,
	lexer.And:         4,
	lexer.Not:         5,
}

type builder struct {
	operators []lexer.TokenType
	nodes     []*Node
	bindings  Bindings

	// expectValue is true whenever the next token must be a value (or
	// something that starts one, like `~` or `(`). It starts true, flips on
	// every value, and flips back on every binary operator. It is what turns
	// inputs like `1 1` or `1 ^` into specific syntax errors.
	expectValue bool

	// previous is the type of the last consumed token. `:=` is only legal
	// directly after a variable.
	previous lexer.TokenType
}

// Parse consumes the lexer and returns the expression tree together with the
// bindings collected from assignment statements. The first lex or syntax
// error aborts parsing.
func Parse(lex *lexer.Lexer) (*Node, Bindings, error) {
	b := &builder{
		bindings:    make(Bindings),
		expectValue: true,
	}

	for {
		token, err := lex.Next()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read next token: %w", err)
		}
		if token.Type == lexer.EOF {
			break
		}

		if err := b.consume(token, lex); err != nil {
			return nil, nil, err
		}
		b.previous = token.Type
	}

	root, err := b.finish()
	if err != nil {
		return nil, nil, err
	}
	return root, b.bindings, nil
}

func (b *builder) consume(token lexer.Token, lex *lexer.Lexer) error {
	switch token.Type {
	case lexer.Literal, lexer.Variable:
		if !b.expectValue {
			return NewSyntaxError("expected an operator before %s", token)
		}
		b.nodes = append(b.nodes, NewNode(token))
		b.expectValue = false
		return nil

	case lexer.ParenOpen:
		if !b.expectValue {
			return NewSyntaxError("expected an operator before (")
		}
		b.operators = append(b.operators, lexer.ParenOpen)
		return nil

	case lexer.ParenClose:
		if b.expectValue {
			return NewSyntaxError("expected a value before )")
		}
		return b.closeGroup()

	case lexer.Assign:
		return b.assign(lex)

	case lexer.Not:
		if !b.expectValue {
			return NewSyntaxError("expected an operator before %s", token)
		}
		return b.pushOperator(lexer.Not)

	case lexer.Equivalence, lexer.Implication, lexer.Or, lexer.And:
		if b.expectValue {
			return NewSyntaxError("expected a value before %s", token)
		}
		b.expectValue = true
		return b.pushOperator(token.Type)

	default:
		return NewSyntaxError("unexpected token %s", token)
	}
}

// pushOperator reduces every pending operator that binds at least as tightly
// as op, then pushes op. Open parentheses act as a barrier and stop the
// reduction.
func (b *builder) pushOperator(op lexer.TokenType) error {
	for len(b.operators) > 0 {
		top := b.operators[len(b.operators)-1]
		if top == lexer.ParenOpen || precedence[top] < precedence[op] {
			break
		}
		b.operators = b.operators[:len(b.operators)-1]
		if err := b.reduce(top); err != nil {
			return err
		}
	}
	b.operators = append(b.operators, op)
	return nil
}

// closeGroup reduces until the matching open parenthesis is found and
// discarded.
func (b *builder) closeGroup() error {
	for len(b.operators) > 0 {
		top := b.operators[len(b.operators)-1]
		b.operators = b.operators[:len(b.operators)-1]
		if top == lexer.ParenOpen {
			return nil
		}
		if err := b.reduce(top); err != nil {
			return err
		}
	}
	return NewSyntaxError("unmatched )")
}

// reduce pops operands for op off the node stack and pushes the combined
// subtree back. Not takes a single operand, stored as the left child.
func (b *builder) reduce(op lexer.TokenType) error {
	if len(b.nodes) == 0 {
		return NewSyntaxError("operator %s has no operand", op)
	}
	right := b.nodes[len(b.nodes)-1]
	b.nodes = b.nodes[:len(b.nodes)-1]

	if op == lexer.Not {
		b.nodes = append(b.nodes, &Node{Token: lexer.Token{Type: op}, Left: right})
		return nil
	}

	if len(b.nodes) == 0 {
		return NewSyntaxError("operator %s is missing its left operand", op)
	}
	left := b.nodes[len(b.nodes)-1]
	b.nodes = b.nodes[:len(b.nodes)-1]

	b.nodes = append(b.nodes, &Node{Token: lexer.Token{Type: op}, Left: left, Right: right})
	return nil
}

// assign handles one `name := value` statement. The variable leaf for name
// was already pushed; it is removed again and the resolved value is recorded
// in the bindings table instead. Assignments are only legal before the
// expression proper, which is exactly when the variable leaf is the only
// thing on either stack.
func (b *builder) assign(lex *lexer.Lexer) error {
	if b.previous != lexer.Variable {
		return NewSyntaxError(":= must follow a variable")
	}
	if len(b.operators) != 0 || len(b.nodes) != 1 {
		return NewSyntaxError("assignments must come before the expression")
	}
	target := b.nodes[0]

	value, err := lex.Next()
	if err != nil {
		return fmt.Errorf("failed to read next token: %w", err)
	}

	switch value.Type {
	case lexer.Literal:
		b.bindings[target.Token.Name] = value.Value
	case lexer.Variable:
		resolved, ok := b.bindings.Lookup(value.Name)
		if !ok {
			return NewUndefinedAssignmentError(target.Token.Name, value.Name)
		}
		b.bindings[target.Token.Name] = resolved
	default:
		return NewSyntaxError("expected a value after :=, got %s", value)
	}

	b.nodes = b.nodes[:0]
	b.expectValue = true
	return nil
}

// finish reduces everything still pending and returns the single remaining
// node.
func (b *builder) finish() (*Node, error) {
	if b.expectValue && (len(b.nodes) > 0 || len(b.operators) > 0) {
		return nil, NewSyntaxError("unexpected end of statement")
	}

	for len(b.operators) > 0 {
		top := b.operators[len(b.operators)-1]
		b.operators = b.operators[:len(b.operators)-1]
		if top == lexer.ParenOpen {
			return nil, NewSyntaxError("unmatched (")
		}
		if err := b.reduce(top); err != nil {
			return nil, err
		}
	}

	switch len(b.nodes) {
	case 0:
		return nil, NewSyntaxError("empty statement")
	case 1:
		return b.nodes[0], nil
	default:
		// can't happen while expectValue is maintained correctly
		return nil, NewSyntaxError("%d expressions left after parsing, expected exactly one", len(b.nodes))
	}
}
