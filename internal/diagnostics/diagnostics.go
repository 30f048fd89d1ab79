// Package diagnostics formats and accumulates the static errors produced by
// the lexer, parser, and resolver stages, and the runtime errors produced by
// the evaluator. It is the ambient error-reporting stack shared by every
// pipeline stage, adapted from the teacher's source-excerpt-with-caret
// formatter.
package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/glint-lang/glint/internal/token"
)

// Diagnostic is a single static error reported by the lexer, parser, or
// resolver. Where is empty for lexical errors (spec.md §6), " at end" at
// end-of-input, or " at '<lexeme>'" at a token.
type Diagnostic struct {
	Line    int
	Where   string
	Message string
	Source  string // full source text, for caret excerpts; may be empty
}

// AtToken builds a Diagnostic positioned at tok, following spec.md §6's
// "at end" / "at '<lexeme>'" convention.
func AtToken(tok token.Token, message string) Diagnostic {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Kind == token.EOF {
		where = " at end"
	}
	return Diagnostic{Line: tok.Pos.Line, Where: where, Message: message}
}

// AtLine builds a Diagnostic with no token context, as lexical errors do.
func AtLine(line int, message string) Diagnostic {
	return Diagnostic{Line: line, Message: message}
}

// oneLine renders the spec-mandated "[line L] Error<where>: <message>" form.
func (d Diagnostic) oneLine() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Report accumulates diagnostics across a single pipeline stage so every
// error in that stage is surfaced before the pipeline halts (spec.md §7).
type Report struct {
	Source string
	items  []Diagnostic
}

// NewReport creates an empty Report. Source, when set, enables caret
// excerpts in Format; it may be left empty.
func NewReport(source string) *Report {
	return &Report{Source: source}
}

// Add appends a diagnostic, stamping it with the report's source text.
func (r *Report) Add(d Diagnostic) {
	if d.Source == "" {
		d.Source = r.Source
	}
	r.items = append(r.items, d)
}

// HadError reports whether any diagnostic has been added.
func (r *Report) HadError() bool { return len(r.items) > 0 }

// Diagnostics returns the accumulated diagnostics in report order.
func (r *Report) Diagnostics() []Diagnostic { return r.items }

// Format writes every diagnostic's mandated one-line form, followed by an
// optional caret-annotated source excerpt (an ambient enrichment beyond
// spec.md's minimum contract; never replaces the one-line form).
func (r *Report) Format(w io.Writer, excerpt bool) {
	for _, d := range r.items {
		fmt.Fprintln(w, d.oneLine())
		if excerpt {
			if ex := sourceExcerpt(d); ex != "" {
				fmt.Fprintln(w, ex)
			}
		}
	}
}

// sourceExcerpt renders the offending source line with a caret. It returns
// "" when no source text or line is available.
func sourceExcerpt(d Diagnostic) string {
	if d.Source == "" || d.Line <= 0 {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if d.Line > len(lines) {
		return ""
	}
	line := lines[d.Line-1]
	prefix := fmt.Sprintf("%4d | ", d.Line)
	caret := strings.Repeat(" ", len(prefix)) + "^"
	return prefix + line + "\n" + caret
}

// RuntimeError is raised by the evaluator and formatted independently of
// Report, per spec.md §6: "message\n[line L]".
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Pos.Line)
}

// NewRuntimeError constructs a RuntimeError positioned at tok.
func NewRuntimeError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
