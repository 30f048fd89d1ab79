package ast

import (
	"strings"

	"github.com/glint-lang/glint/internal/token"
)

// ExpressionStmt evaluates Expr for its side effect and discards the value.
type ExpressionStmt struct {
	Expr Expr
}

func (s *ExpressionStmt) stmtNode()            {}
func (s *ExpressionStmt) TokenLiteral() string { return s.Expr.TokenLiteral() }
func (s *ExpressionStmt) Pos() token.Position  { return s.Expr.Pos() }
func (s *ExpressionStmt) String() string       { return s.Expr.String() + ";" }

// PrintStmt evaluates Expr and writes its stringification followed by a
// newline.
type PrintStmt struct {
	Token token.Token // the 'print' keyword
	Expr  Expr
}

func (s *PrintStmt) stmtNode()            {}
func (s *PrintStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *PrintStmt) Pos() token.Position  { return s.Token.Pos }
func (s *PrintStmt) String() string       { return "print " + s.Expr.String() + ";" }

// VarStmt declares Name in the current scope, optionally initialized.
type VarStmt struct {
	Token       token.Token // the 'var' keyword
	Name        token.Token
	Initializer Expr // nil if omitted
}

func (s *VarStmt) stmtNode()            {}
func (s *VarStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *VarStmt) Pos() token.Position  { return s.Token.Pos }
func (s *VarStmt) String() string {
	if s.Initializer == nil {
		return "var " + s.Name.Lexeme + ";"
	}
	return "var " + s.Name.Lexeme + " = " + s.Initializer.String() + ";"
}

// Block is a brace-delimited sequence of statements, executed together in
// one fresh enclosed environment.
type Block struct {
	Token      token.Token // the '{'
	Statements []Stmt
}

func (s *Block) stmtNode()            {}
func (s *Block) TokenLiteral() string { return s.Token.Lexeme }
func (s *Block) Pos() token.Position  { return s.Token.Pos }
func (s *Block) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for _, st := range s.Statements {
		b.WriteString(st.String())
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}

// If runs Then when Condition is truthy, else Else (which may be nil).
type If struct {
	Token     token.Token // the 'if' keyword
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if omitted
}

func (s *If) stmtNode()            {}
func (s *If) TokenLiteral() string { return s.Token.Lexeme }
func (s *If) Pos() token.Position  { return s.Token.Pos }
func (s *If) String() string {
	out := "if (" + s.Condition.String() + ") " + s.Then.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

// While runs Body repeatedly while Condition is truthy.
type While struct {
	Token     token.Token // the 'while' keyword
	Condition Expr
	Body      Stmt
}

func (s *While) stmtNode()            {}
func (s *While) TokenLiteral() string { return s.Token.Lexeme }
func (s *While) Pos() token.Position  { return s.Token.Pos }
func (s *While) String() string {
	return "while (" + s.Condition.String() + ") " + s.Body.String()
}

// Function declares a named function (or, nested inside Class.Methods, a
// method — the resolver and evaluator distinguish the two by context, not
// by shape).
type Function struct {
	Token  token.Token // the 'fun' keyword, or the method name for methods
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *Function) stmtNode()            {}
func (s *Function) TokenLiteral() string { return s.Name.Lexeme }
func (s *Function) Pos() token.Position  { return s.Name.Pos }
func (s *Function) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Lexeme
	}
	return "fun " + s.Name.Lexeme + "(" + strings.Join(params, ", ") + ") " + (&Block{Statements: s.Body}).String()
}

// Return unwinds to the nearest enclosing call with Value (nil if omitted,
// meaning return nil).
type Return struct {
	Keyword token.Token
	Value   Expr // nil if omitted
}

func (s *Return) stmtNode()            {}
func (s *Return) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *Return) Pos() token.Position  { return s.Keyword.Pos }
func (s *Return) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

// Class declares a class, optionally inheriting from Superclass (stored as
// a *Variable so the resolver can record a scope distance for it).
type Class struct {
	Token      token.Token // the 'class' keyword
	Name       token.Token
	Superclass *Variable // nil if no superclass
	Methods    []*Function
}

func (s *Class) stmtNode()            {}
func (s *Class) TokenLiteral() string { return s.Name.Lexeme }
func (s *Class) Pos() token.Position  { return s.Name.Pos }
func (s *Class) String() string {
	var b strings.Builder
	b.WriteString("class " + s.Name.Lexeme)
	if s.Superclass != nil {
		b.WriteString(" < " + s.Superclass.Name.Lexeme)
	}
	b.WriteString(" { ")
	for _, m := range s.Methods {
		b.WriteString(m.String())
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}
