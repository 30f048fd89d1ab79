package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/glint-lang/glint/internal/ast"
	"github.com/glint-lang/glint/internal/interp"
	"github.com/glint-lang/glint/internal/lexer"
	"github.com/glint-lang/glint/internal/parser"
	"github.com/glint-lang/glint/internal/resolver"
)

// compile runs the lexer, parser, and resolver stages over source in turn,
// stopping at the first stage that reports an error — spec.md section 7's
// propagation policy: "the next pipeline stage runs only if no error has
// occurred." Each stage's diagnostics, if any, are written to stderr before
// compile returns the static-error exit code.
func compile(source string, dumpTokens, dumpAST bool, out io.Writer) ([]ast.Stmt, resolver.Locals, error) {
	toks, lexReport := lexer.Scan(source)
	if dumpTokens {
		for _, t := range toks {
			fmt.Fprintln(out, t.String())
		}
	}
	if lexReport.HadError() {
		lexReport.Format(os.Stderr, true)
		return nil, nil, &exitError{code: 65, msg: "static error"}
	}

	stmts, parseReport := parser.Parse(toks, source)
	if dumpAST {
		for _, s := range stmts {
			fmt.Fprintln(out, s.String())
		}
	}
	if parseReport.HadError() {
		parseReport.Format(os.Stderr, true)
		return nil, nil, &exitError{code: 65, msg: "static error"}
	}

	locals, resolveReport := resolver.Resolve(stmts, source)
	if resolveReport.HadError() {
		resolveReport.Format(os.Stderr, true)
		return nil, nil, &exitError{code: 65, msg: "static error"}
	}

	return stmts, locals, nil
}

// runFile compiles and executes the script at path to completion, per
// spec.md section 6's one-positional-argument CLI form.
func runFile(path string, dumpTokens, dumpAST bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	stmts, locals, err := compile(string(content), dumpTokens, dumpAST, os.Stdout)
	if err != nil {
		return err
	}

	it := interp.New(os.Stdout)
	if rerr := it.Interpret(stmts, locals); rerr != nil {
		reportRuntimeError(rerr)
		return &exitError{code: 70, msg: "runtime error"}
	}
	return nil
}

// reportRuntimeError writes a runtime failure to stderr in spec.md section
// 6's "message\n[line L]" form (diagnostics.RuntimeError already formats
// this way; any other error is printed as-is).
func reportRuntimeError(err error) {
	fmt.Fprintln(os.Stderr, err)
}
