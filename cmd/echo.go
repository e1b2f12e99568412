package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var echoCmd = &cobra.Command{
	Use:   "echo [file]",
	Short: "Parse a source file and echo it back out",
	Long: `Parse a source file and write the echo rendering, which reconstructs
the input (modulo normalized whitespace) from the output tree. Useful for
checking what the parser understood.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}

		tree, err := newParser(cfg).Parse(filename, content)
		if err != nil {
			return fmt.Errorf("failed to parse file %s: %w", filename, err)
		}

		tree.Echo(os.Stdout, "")
		return nil
	},
}

func init() {
	addParseFlags(echoCmd)
}
