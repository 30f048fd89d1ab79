package cmd

import (
	"fmt"
	"os"

	"github.com/glint-lang/glint/internal/lexer"
	"github.com/glint-lang/glint/internal/parser"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Lex and parse a Glint script and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAST(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	source := string(content)

	toks, lexReport := lexer.Scan(source)
	if lexReport.HadError() {
		lexReport.Format(os.Stderr, true)
		return &exitError{code: 65, msg: "static error"}
	}

	stmts, parseReport := parser.Parse(toks, source)
	for _, s := range stmts {
		fmt.Println(s.String())
	}
	if parseReport.HadError() {
		parseReport.Format(os.Stderr, true)
		return &exitError{code: 65, msg: "static error"}
	}
	return nil
}
