package cmd

import (
	"fmt"
	"os"

	"conceptc/pkg/lexer"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the classified token table for a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}

		tokens, err := lexer.New().Tokenize(filename, content)
		if err != nil {
			return fmt.Errorf("failed to tokenize file %s: %w", filename, err)
		}

		for pos, token := range tokens {
			fmt.Printf("%4d: %-12s %q (line %d, col %d)\n",
				pos, token.Kind, token.Lexeme, token.Line, token.Col)
		}
		return nil
	},
}
