// Package app contains the Cobra command tree for codelife.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "codelife",
	Short: "Statistics and milestone reports for your coding life",
	Long: `codelife scans your project directories, classifies source files by
language, and rolls the results up into a coding-life report: projects,
files, non-blank lines, byte volume, an estimated keystroke count, and the
span of your coding journey.

Run 'codelife' with no arguments in a terminal for the interactive wizard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return runWizard()
		}
		fmt.Println("codelife", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  report    Lifetime report across all configured roots")
		fmt.Println("  annual    Report restricted to one calendar year")
		fmt.Println("  history   Show past runs and how the totals moved")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/codelife/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}
