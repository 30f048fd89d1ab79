package cmd

import "github.com/spf13/cobra"

var (
	runDumpTokens bool
	runDumpAST    bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Glint script file",
	Long: `Run executes a Glint script file, an explicit alternative to the bare
"glint <file>" form with debugging flags for inspecting the lexer and
parser stages before evaluation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runFile(args[0], runDumpTokens, runDumpAST)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runDumpTokens, "dump-tokens", false, "print the lexer's token stream before evaluating")
	runCmd.Flags().BoolVar(&runDumpAST, "dump-ast", false, "print the parsed AST before evaluating")
}
