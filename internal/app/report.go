package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YCTS-otree/codelife/internal/aggregator"
	"github.com/YCTS-otree/codelife/internal/config"
	"github.com/YCTS-otree/codelife/internal/output"
	"github.com/YCTS-otree/codelife/internal/summary"
)

var (
	reportFlagHidden   bool
	reportFlagMerge    bool
	reportFlagJSON     bool
	reportFlagNoExport bool
)

var reportCmd = &cobra.Command{
	Use:   "report [roots...]",
	Short: "Lifetime report across all configured roots",
	Long: `Report scans every root directory (arguments, or scan_paths from the
config), treats each top-level subdirectory as a project, and prints the
lifetime coding report. Unless disabled, Markdown and JSON documents are
exported to the configured report directory.`,
	RunE: runReportCmd,
}

func init() {
	reportCmd.Flags().BoolVar(&reportFlagHidden, "include-hidden", false, "Include dot-prefixed files and directories")
	reportCmd.Flags().BoolVar(&reportFlagMerge, "merge-similar", false, "Count only the newest of similarly named files")
	reportCmd.Flags().BoolVar(&reportFlagJSON, "json", false, "Print the report document as JSON instead of rendering it")
	reportCmd.Flags().BoolVar(&reportFlagNoExport, "no-export", false, "Skip writing report files")

	rootCmd.AddCommand(reportCmd)
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	output.AutoColor(flagNoColor || !cfg.Output.Color)

	return runReport(cfg, runOptions{
		roots: args,
		agg: aggregator.Options{
			IncludeHidden: reportFlagHidden || cfg.IncludeHidden,
			MergeSimilar:  reportFlagMerge || cfg.MergeSimilar,
		},
		mode:     summary.Lifetime,
		asJSON:   reportFlagJSON,
		noExport: reportFlagNoExport,
	})
}
