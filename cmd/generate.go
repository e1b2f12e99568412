package cmd

import (
	"fmt"
	"os"

	"conceptc/pkg/generator"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Translate a source file, expanding concept definitions",
	Long: `Parse a source file and write the transformed rendering: each concept
definition is expanded into a generated class and all other statements pass
through unchanged.`,
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

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create output file %s: %w", path, err)
			}
			defer f.Close()
			out = f
		}

		opts := []generator.Option{generator.WithIndent(cfg.Indent)}
		if cfg.Tabs {
			opts = append(opts, generator.WithTabs())
		}
		generator.New(opts...).Generate(out, tree)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "Write output to file instead of stdout")
	generateCmd.Flags().Int("indent", 2, "Indent width of generated output")
	addParseFlags(generateCmd)
}
