// Package graphviz renders an expression tree as a graph description in DOT
// format, as a debugging aid. See https://graphviz.org/pdf/dotguide.pdf.
package graphviz

import (
	"fmt"
	"io"
	"os"

	"github.com/eriklarko/logic-solver/src/parser"
)

// Write renders the tree rooted at root as an undirected DOT graph. Nodes are
// numbered breadth-first; operator nodes are drawn as boxes, literal and
// variable nodes as plain labels.
func Write(w io.Writer, root *parser.Node) error {
	if root == nil {
		return fmt.Errorf("cannot visualize an empty tree")
	}

	if _, err := io.WriteString(w, "graph G {\n"); err != nil {
		return err
	}

	type edge struct{ from, to int }
	var definitions []string
	var edges []edge

	type queued struct {
		node   *parser.Node
		parent int // -1 for the root
	}
	queue := []queued{{node: root, parent: -1}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		id := len(definitions)
		definitions = append(definitions, definition(id, current.node))
		if current.parent >= 0 {
			edges = append(edges, edge{from: current.parent, to: id})
		}

		if current.node.Left != nil {
			queue = append(queue, queued{node: current.node.Left, parent: id})
		}
		if current.node.Right != nil {
			queue = append(queue, queued{node: current.node.Right, parent: id})
		}
	}

	for _, d := range definitions {
		if _, err := io.WriteString(w, d); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "    %d -- %d\n", e.from, e.to); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "}")
	return err
}

// WriteFile renders the tree to the given path, creating or truncating the
// file.
func WriteFile(path string, root *parser.Node) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := Write(file, root); err != nil {
		return fmt.Errorf("failed to write graph to %s: %w", path, err)
	}
	return nil
}

func definition(id int, node *parser.Node) string {
	if node.Token.IsOperator() {
		return fmt.Sprintf("    %d [label=%q shape=\"box\"]\n", id, node.Token)
	}
	return fmt.Sprintf("    %d [label=%q]\n", id, node.Token)
}
