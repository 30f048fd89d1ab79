// Package ast defines the node set of spec.md §3: expression and statement
// tagged variants, implemented as small interfaces with one concrete struct
// per case. A node's own pointer is its stable reference identity — the
// resolver and evaluator key maps on it directly.
package ast

import "github.com/glint-lang/glint/internal/token"

// Node is the common surface of every expression and statement node.
type Node interface {
	// TokenLiteral returns the lexeme of the token most closely associated
	// with this node, useful for debugging and error messages.
	TokenLiteral() string
	// String renders the node for debugging/testing.
	String() string
	// Pos returns the node's source position.
	Pos() token.Position
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action.
type Stmt interface {
	Node
	stmtNode()
}
