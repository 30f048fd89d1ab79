package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "glint [script]",
	Short: "Glint interpreter",
	Long: `Glint is a tree-walking interpreter for a small dynamically-typed,
class-based scripting language.

Run with no arguments to start an interactive prompt, or give it a single
script file to execute.`,
	// The positional-argument contract (0 args -> REPL, 1 -> run file, >1 ->
	// usage error) is spec.md section 6's exact wording and exit codes, so it
	// is checked by hand in RunE rather than delegated to cobra's Args
	// validators, which can only reject — they cannot branch into a REPL.
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
	// Every failure path here already writes its own diagnostic to stderr
	// (compile's Report.Format, reportRuntimeError, or the usage line
	// below); cobra's own "Error: ..." / usage-string output would just
	// duplicate it.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and translates its outcome into the
// process exit code, per spec.md section 6's exit code table.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if ec, ok := err.(exitCoder); ok {
			os.Exit(ec.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// exitCoder lets a RunE error carry a specific process exit code, since
// cobra itself only distinguishes "error" from "no error".
type exitCoder interface {
	error
	ExitCode() int
}

type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }
func (e *exitError) ExitCode() int { return e.code }

func runRoot(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return runREPL(cmd.OutOrStdout())
	case 1:
		return runFile(args[0], false, false)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "Usage: glint [script]")
		return &exitError{code: 64, msg: "usage error"}
	}
}
