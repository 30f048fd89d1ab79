package ast

import (
	"fmt"
	"strings"

	"github.com/glint-lang/glint/internal/token"
)

// Literal is a nil, boolean, number, or string constant.
type Literal struct {
	Token token.Token
	Value any // nil, bool, float64, or string
}

func (e *Literal) exprNode()               {}
func (e *Literal) TokenLiteral() string    { return e.Token.Lexeme }
func (e *Literal) Pos() token.Position     { return e.Token.Pos }
func (e *Literal) String() string {
	if e.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", e.Value)
}

// Grouping is a parenthesized expression, kept distinct so later stages can
// tell `(a)` from `a` when that matters (e.g. pretty-printing).
type Grouping struct {
	Token token.Token // the '('
	Inner Expr
}

func (e *Grouping) exprNode()            {}
func (e *Grouping) TokenLiteral() string { return e.Token.Lexeme }
func (e *Grouping) Pos() token.Position  { return e.Token.Pos }
func (e *Grouping) String() string       { return "(" + e.Inner.String() + ")" }

// Unary is a prefix operator applied to one operand: `!`, `-`.
type Unary struct {
	Op    token.Token
	Right Expr
}

func (e *Unary) exprNode()            {}
func (e *Unary) TokenLiteral() string { return e.Op.Lexeme }
func (e *Unary) Pos() token.Position  { return e.Op.Pos }
func (e *Unary) String() string       { return "(" + e.Op.Lexeme + e.Right.String() + ")" }

// Binary is an arithmetic or comparison operator over two operands.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) exprNode()            {}
func (e *Binary) TokenLiteral() string { return e.Op.Lexeme }
func (e *Binary) Pos() token.Position  { return e.Op.Pos }
func (e *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op.Lexeme, e.Right.String())
}

// Logical is `and`/`or`; kept distinct from Binary because it short-circuits
// instead of always evaluating both operands.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Logical) exprNode()            {}
func (e *Logical) TokenLiteral() string { return e.Op.Lexeme }
func (e *Logical) Pos() token.Position  { return e.Op.Pos }
func (e *Logical) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op.Lexeme, e.Right.String())
}

// Variable is a reference to a name; the resolver records its scope
// distance (or leaves it unresolved, meaning global) keyed on this node's
// own pointer identity.
type Variable struct {
	Name token.Token
}

func (e *Variable) exprNode()            {}
func (e *Variable) TokenLiteral() string { return e.Name.Lexeme }
func (e *Variable) Pos() token.Position  { return e.Name.Pos }
func (e *Variable) String() string       { return e.Name.Lexeme }

// Assign stores Value into the variable Name, at the scope distance the
// resolver records for this node (or globally, if unresolved).
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) exprNode()            {}
func (e *Assign) TokenLiteral() string { return e.Name.Lexeme }
func (e *Assign) Pos() token.Position  { return e.Name.Pos }
func (e *Assign) String() string       { return fmt.Sprintf("(%s = %s)", e.Name.Lexeme, e.Value.String()) }

// Call invokes Callee with Arguments. Paren is the closing ')', used to
// report arity-mismatch runtime errors at a sensible location.
type Call struct {
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func (e *Call) exprNode()            {}
func (e *Call) TokenLiteral() string { return e.Paren.Lexeme }
func (e *Call) Pos() token.Position  { return e.Callee.Pos() }
func (e *Call) String() string {
	args := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Callee.String(), strings.Join(args, ", "))
}

// Get reads the field or method Name off Object.
type Get struct {
	Object Expr
	Name   token.Token
}

func (e *Get) exprNode()            {}
func (e *Get) TokenLiteral() string { return e.Name.Lexeme }
func (e *Get) Pos() token.Position  { return e.Name.Pos }
func (e *Get) String() string       { return fmt.Sprintf("%s.%s", e.Object.String(), e.Name.Lexeme) }

// Set stores Value into the field Name on Object.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (e *Set) exprNode()            {}
func (e *Set) TokenLiteral() string { return e.Name.Lexeme }
func (e *Set) Pos() token.Position  { return e.Name.Pos }
func (e *Set) String() string {
	return fmt.Sprintf("(%s.%s = %s)", e.Object.String(), e.Name.Lexeme, e.Value.String())
}

// This is the `this` keyword, resolved like any local variable reference.
type This struct {
	Keyword token.Token
}

func (e *This) exprNode()            {}
func (e *This) TokenLiteral() string { return e.Keyword.Lexeme }
func (e *This) Pos() token.Position  { return e.Keyword.Pos }
func (e *This) String() string       { return "this" }

// Super is `super.method`; Method names the superclass method to look up.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (e *Super) exprNode()            {}
func (e *Super) TokenLiteral() string { return e.Keyword.Lexeme }
func (e *Super) Pos() token.Position  { return e.Keyword.Pos }
func (e *Super) String() string       { return "super." + e.Method.Lexeme }
