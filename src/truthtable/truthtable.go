// Package truthtable evaluates an expression tree under every combination of
// values for its unbound variables. It answers questions like "is this
// statement a tautology" by brute force, which is fine for the handful of
// variables a hand-written statement has.
package truthtable

import (
	"fmt"
	"sort"

	"github.com/eriklarko/logic-solver/src/evaluator"
	"github.com/eriklarko/logic-solver/src/lexer"
	"github.com/eriklarko/logic-solver/src/parser"
	"github.com/samber/lo"
)

// MaxVariables caps how many free variables a table may enumerate. 16
// variables already mean 65536 rows.
const MaxVariables = 16

// Row is one line of a truth table: a full assignment of the free variables
// and the value the expression takes under it.
type Row struct {
	Assignment map[string]bool
	Result     bool
}

// Table holds the evaluated truth table of one expression.
type Table struct {
	// Variables lists the free variables in sorted order.
	Variables []string
	Rows      []Row
}

// Generate evaluates the tree under every combination of values for the
// variables not covered by bindings. Variables that are bound keep their
// bound value in every row. An expression without free variables yields a
// single row.
func Generate(root *parser.Node, bindings parser.Bindings) (*Table, error) {
	free := freeVariables(root, bindings)
	if len(free) > MaxVariables {
		return nil, fmt.Errorf("too many free variables: %d, max is %d", len(free), MaxVariables)
	}

	table := &Table{Variables: free}
	for combination := 0; combination < 1<<len(free); combination++ {
		assignment := make(map[string]bool, len(free))
		scope := make(parser.Bindings, len(bindings)+len(free))
		for name, value := range bindings {
			scope[name] = value
		}
		for i, name := range free {
			value := combination&(1<<i) != 0
			assignment[name] = value
			scope[name] = value
		}

		result, err := evaluator.Evaluate(root, scope)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate row %d: %w", combination, err)
		}
		table.Rows = append(table.Rows, Row{Assignment: assignment, Result: result})
	}
	return table, nil
}

// Tautology reports whether the expression is true under every assignment.
func (t *Table) Tautology() bool {
	return lo.EveryBy(t.Rows, func(r Row) bool { return r.Result })
}

// Contradiction reports whether the expression is false under every
// assignment.
func (t *Table) Contradiction() bool {
	return !t.Satisfiable()
}

// Satisfiable reports whether at least one assignment makes the expression
// true.
func (t *Table) Satisfiable() bool {
	return lo.SomeBy(t.Rows, func(r Row) bool { return r.Result })
}

// freeVariables collects the variable names in the tree that have no binding,
// sorted for stable row order.
func freeVariables(node *parser.Node, bindings parser.Bindings) []string {
	seen := make(map[string]bool)
	collectVariables(node, seen)

	var free []string
	for _, name := range lo.Keys(seen) {
		if _, bound := bindings.Lookup(name); !bound {
			free = append(free, name)
		}
	}
	sort.Strings(free)
	return free
}

func collectVariables(node *parser.Node, seen map[string]bool) {
	if node == nil {
		return
	}
	if node.Token.Type == lexer.Variable {
		seen[node.Token.Name] = true
	}
	collectVariables(node.Left, seen)
	collectVariables(node.Right, seen)
}
