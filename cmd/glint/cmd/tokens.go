package cmd

import (
	"fmt"
	"os"

	"github.com/glint-lang/glint/internal/lexer"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Lex a Glint script and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	toks, report := lexer.Scan(string(content))
	for _, t := range toks {
		fmt.Println(t.String())
	}
	if report.HadError() {
		report.Format(os.Stderr, true)
		return &exitError{code: 65, msg: "static error"}
	}
	return nil
}
