// Package evaluator walks an expression tree and computes its boolean value,
// resolving variable leaves against a bindings table.
package evaluator

import (
	"fmt"

	"github.com/eriklarko/logic-solver/src/lexer"
	"github.com/eriklarko/logic-solver/src/parser"
)

// Evaluate computes the boolean value of the tree rooted at node. Variable
// leaves are looked up in bindings. Evaluation mutates nothing and the same
// tree and bindings always produce the same result.
func Evaluate(node *parser.Node, bindings parser.Bindings) (bool, error) {
	switch node.Token.Type {
	case lexer.Literal:
		return node.Token.Value, nil

	case lexer.Variable:
		value, ok := bindings.Lookup(node.Token.Name)
		if !ok {
			return false, NewUndefinedVariableError(node.Token.Name)
		}
		return value, nil

	case lexer.Not:
		if node.Left == nil {
			return false, NewMalformedTreeError(node.Token.String(), "sole")
		}
		value, err := Evaluate(node.Left, bindings)
		if err != nil {
			return false, fmt.Errorf("failed to evaluate negated expression: %w", err)
		}
		return !value, nil

	case lexer.Equivalence:
		return evaluateBinary(node, bindings, func(a, b bool) bool { return a == b })
	case lexer.Implication:
		return evaluateBinary(node, bindings, implication)
	case lexer.Or:
		return evaluateBinary(node, bindings, func(a, b bool) bool { return a || b })
	case lexer.And:
		return evaluateBinary(node, bindings, func(a, b bool) bool { return a && b })

	default:
		return false, fmt.Errorf("cannot evaluate %s node", node.Token)
	}
}

func evaluateBinary(node *parser.Node, bindings parser.Bindings, combine func(bool, bool) bool) (bool, error) {
	switch {
	case node.Left == nil && node.Right == nil:
		return false, NewMalformedTreeError(node.Token.String(), "every")
	case node.Left == nil:
		return false, NewMalformedTreeError(node.Token.String(), "left")
	case node.Right == nil:
		return false, NewMalformedTreeError(node.Token.String(), "right")
	}

	left, err := Evaluate(node.Left, bindings)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate left operand: %w", err)
	}
	right, err := Evaluate(node.Right, bindings)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate right operand: %w", err)
	}
	return combine(left, right), nil
}

// implication is false only when the antecedent holds and the consequent does
// not.
func implication(a, b bool) bool {
	return !(a && !b)
}
