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
	annualFlagYear     int
	annualFlagHidden   bool
	annualFlagMerge    bool
	annualFlagJSON     bool
	annualFlagNoExport bool
)

var annualCmd = &cobra.Command{
	Use:   "annual [roots...]",
	Short: "Report restricted to one calendar year",
	Long: `Annual runs the same scan as report but counts only files whose
timestamp falls in the given calendar year, and measures the journey span
between the year's first and last file.`,
	RunE: runAnnualCmd,
}

func init() {
	annualCmd.Flags().IntVar(&annualFlagYear, "year", 0, "Calendar year to report on (e.g. 2025)")
	annualCmd.Flags().BoolVar(&annualFlagHidden, "include-hidden", false, "Include dot-prefixed files and directories")
	annualCmd.Flags().BoolVar(&annualFlagMerge, "merge-similar", false, "Count only the newest of similarly named files")
	annualCmd.Flags().BoolVar(&annualFlagJSON, "json", false, "Print the report document as JSON instead of rendering it")
	annualCmd.Flags().BoolVar(&annualFlagNoExport, "no-export", false, "Skip writing report files")
	_ = annualCmd.MarkFlagRequired("year")

	rootCmd.AddCommand(annualCmd)
}

func runAnnualCmd(cmd *cobra.Command, args []string) error {
	// The only scan parameter worth failing fast on.
	if annualFlagYear <= 0 {
		return fmt.Errorf("invalid year %d: must be a positive calendar year", annualFlagYear)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	output.AutoColor(flagNoColor || !cfg.Output.Color)

	return runReport(cfg, runOptions{
		roots: args,
		agg: aggregator.Options{
			IncludeHidden: annualFlagHidden || cfg.IncludeHidden,
			MergeSimilar:  annualFlagMerge || cfg.MergeSimilar,
			Year:          annualFlagYear,
		},
		mode:     summary.Annual,
		year:     annualFlagYear,
		asJSON:   annualFlagJSON,
		noExport: annualFlagNoExport,
	})
}
