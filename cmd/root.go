package cmd

import (
	"fmt"

	"conceptc/pkg/config"
	"conceptc/pkg/parser"

	"github.com/spf13/cobra"
)

// Version information
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "conceptc",
	Short: "A concept-notation source-to-source translator",
	Long: `conceptc reads source files containing concept definitions (named
interface specifications with required, defaulted, and inline-bodied members)
mixed with ordinary code, and re-emits them as compilable output. Concept
nodes are expanded into generated class code; everything else passes through
unchanged.`,
	Version: getVersionString(),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("conceptc %s\n", getVersionString())
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Date:    %s\n", date)
	},
}

func getVersionString() string {
	if version == "dev" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return version
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = getVersionString()
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultFile, "Path to the config file")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(echoCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by the --config flag and applies
// any parse-related flag overrides set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("debug") {
		cfg.Debug, _ = cmd.Flags().GetBool("debug")
	}
	if cmd.Flags().Changed("strict-brackets") {
		cfg.StrictBrackets, _ = cmd.Flags().GetBool("strict-brackets")
	}
	if cmd.Flags().Changed("indent") {
		cfg.Indent, _ = cmd.Flags().GetInt("indent")
	}
	return cfg, nil
}

// newParser builds a parser from the effective config.
func newParser(cfg config.Config) *parser.Parser {
	return parser.New(parser.Options{
		Debug:          cfg.Debug,
		StrictBrackets: cfg.StrictBrackets,
	})
}

// addParseFlags registers the flags shared by commands that run the parser.
func addParseFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("debug", false, "Print parser trace output")
	cmd.Flags().Bool("strict-brackets", false, "Reject mismatched bracket pairs")
}
