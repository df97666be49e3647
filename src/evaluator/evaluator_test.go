package evaluator_test

import (
	"testing"

	"github.com/eriklarko/logic-solver/src/evaluator"
	"github.com/eriklarko/logic-solver/src/lexer"
	"github.com/eriklarko/logic-solver/src/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate(t *testing.T, input string) bool {
	t.Helper()

	root, bindings, err := parser.Parse(lexer.New(input))
	require.NoError(t, err)

	result, err := evaluator.Evaluate(root, bindings)
	require.NoError(t, err)
	return result
}

func runEvaluatorTests(t *testing.T, tests map[string]bool) {
	t.Helper()

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, expected, evaluate(t, input))
		})
	}
}

func TestLiterals(t *testing.T) {
	runEvaluatorTests(t, map[string]bool{
		"1": true,
		"0": false,
	})
}

func TestNot(t *testing.T) {
	runEvaluatorTests(t, map[string]bool{
		"~1": false,
		"~0": true,
	})
}

func TestAnd(t *testing.T) {
	runEvaluatorTests(t, map[string]bool{
		"1 ^ 1": true,
		"1 ^ 0": false,
		"0 ^ 1": false,
		"0 ^ 0": false,
	})
}

func TestOr(t *testing.T) {
	runEvaluatorTests(t, map[string]bool{
		"1 v 1": true,
		"1 v 0": true,
		"0 v 1": true,
		"0 v 0": false,
	})
}

func TestImplication(t *testing.T) {
	runEvaluatorTests(t, map[string]bool{
		"1 => 1": true,
		"1 => 0": false,
		"0 => 1": true,
		"0 => 0": true,
	})
}

func TestEquivalence(t *testing.T) {
	runEvaluatorTests(t, map[string]bool{
		"1 <=> 1": true,
		"1 <=> 0": false,
		"0 <=> 1": false,
		"0 <=> 0": true,
	})
}

func TestVariables(t *testing.T) {
	runEvaluatorTests(t, map[string]bool{
		"p := 1 p":              true,
		"p := 0 p":              false,
		"p := 1 q := 0 p v q":   true,
		"p := 1 q := 0 p ^ q":   false,
		"p := 1 q := p p <=> q": true,
	})
}

func TestComplexExpressions(t *testing.T) {
	runEvaluatorTests(t, map[string]bool{
		"1 ^ 0 v 1":                      true,
		"1 ^ (0 v 1)":                    true,
		"(1 ^ 0) v 1":                    true,
		"~1 v 0":                         false,
		"~(1 ^ 1)":                       false,
		"(1 => 0) ^ 1":                   false,
		"~1 v ~1 <=> 0":                  true,
		"~1 v ~0 <=> ~(1 ^ 0)":           true,
		"((1 v 0) => 0) ^ 1":             false,
		"p := 1 q := 0 r := 1 p ^ q ^ r": false,
	})
}

func TestUndefinedVariable(t *testing.T) {
	root, bindings, err := parser.Parse(lexer.New("p ^ 1"))
	require.NoError(t, err)

	_, err = evaluator.Evaluate(root, bindings)
	require.Error(t, err)

	var undefinedErr *evaluator.UndefinedVariableError
	require.ErrorAs(t, err, &undefinedErr)
	assert.Equal(t, "p", undefinedErr.Name)
}

func TestMalformedTrees(t *testing.T) {
	leaf := parser.NewNode(lexer.Token{Type: lexer.Literal, Value: true})

	testCases := map[string]struct {
		node    *parser.Node
		missing string
	}{
		"binary missing right child": {
			node:    &parser.Node{Token: lexer.Token{Type: lexer.And}, Left: leaf},
			missing: "right",
		},
		"binary missing left child": {
			node:    &parser.Node{Token: lexer.Token{Type: lexer.Or}, Right: leaf},
			missing: "left",
		},
		"binary missing both children": {
			node:    &parser.Node{Token: lexer.Token{Type: lexer.Implication}},
			missing: "every",
		},
		"negation without child": {
			node:    &parser.Node{Token: lexer.Token{Type: lexer.Not}},
			missing: "sole",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := evaluator.Evaluate(tc.node, make(parser.Bindings))
			require.Error(t, err)

			var malformedErr *evaluator.MalformedTreeError
			require.ErrorAs(t, err, &malformedErr)
			assert.Equal(t, tc.missing, malformedErr.Missing)
		})
	}
}

func TestEvaluationIsRepeatable(t *testing.T) {
	root, bindings, err := parser.Parse(lexer.New("p := 1 ~(p ^ 0) <=> 1"))
	require.NoError(t, err)

	first, err := evaluator.Evaluate(root, bindings)
	require.NoError(t, err)
	second, err := evaluator.Evaluate(root, bindings)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
