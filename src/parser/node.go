package parser

import (
	"fmt"

	"github.com/eriklarko/logic-solver/src/lexer"
)

// Node is one node of the expression tree. Leaves hold Literal or Variable
// tokens and have no children. Binary operators own exactly two children,
// Not owns exactly one, stored in Left. Children are never shared between
// nodes and a finished subtree is never mutated.
type Node struct {
	Token lexer.Token
	Left  *Node
	Right *Node
}

// NewNode creates a childless node for the given token.
func NewNode(token lexer.Token) *Node {
	return &Node{Token: token}
}

func (n *Node) String() string {
	left := "nil"
	if n.Left != nil {
		left = n.Left.Token.String()
	}
	right := "nil"
	if n.Right != nil {
		right = n.Right.Token.String()
	}
	return fmt.Sprintf("Node(%s, left: %s, right: %s)", n.Token, left, right)
}
