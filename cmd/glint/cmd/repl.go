package cmd

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/glint-lang/glint/internal/interp"
)

// runREPL reads one line at a time, prompting "> " (spec.md section 6),
// and keeps a single interpreter alive across lines so variable and
// function definitions persist (spec.md section 5). A static or runtime
// error on one line is reported to stderr and the loop continues with the
// next line — the error flag is scoped to that line, not the session
// (spec.md section 7).
func runREPL(out io.Writer) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	it := interp.New(out)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl-D) or readline.ErrInterrupt (Ctrl-C)
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		stmts, locals, cerr := compile(line, false, false, out)
		if cerr != nil {
			continue // diagnostics already printed by compile
		}

		if rerr := it.Interpret(stmts, locals); rerr != nil {
			reportRuntimeError(rerr)
		}
	}
}
