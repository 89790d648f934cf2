package app

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/YCTS-otree/codelife/internal/aggregator"
	"github.com/YCTS-otree/codelife/internal/config"
	"github.com/YCTS-otree/codelife/internal/output"
	"github.com/YCTS-otree/codelife/internal/summary"
)

// rootSeparators splits a pasted list of directories on commas or semicolons.
var rootSeparators = regexp.MustCompile(`[;,]+`)

// parseRoots splits free-form root input into cleaned, non-empty paths.
func parseRoots(input string) []string {
	var roots []string
	for _, part := range rootSeparators.Split(input, -1) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			roots = append(roots, trimmed)
		}
	}
	return roots
}

// runWizard is the prompt-driven entry point used when codelife runs with no
// subcommand in a terminal.
func runWizard() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	output.AutoColor(flagNoColor || !cfg.Output.Color)

	mode := string(summary.Lifetime)
	rootInput := strings.Join(cfg.ScanPaths, ", ")
	yearInput := ""
	includeHidden := cfg.IncludeHidden
	mergeSimilar := cfg.MergeSimilar

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What kind of report?").
				Options(
					huh.NewOption("Lifetime: everything, across all years", string(summary.Lifetime)),
					huh.NewOption("Annual: one calendar year", string(summary.Annual)),
				).
				Value(&mode),

			huh.NewInput().
				Title("Root directories (comma or semicolon separated)").
				Value(&rootInput).
				Validate(func(s string) error {
					if len(parseRoots(s)) == 0 {
						return fmt.Errorf("enter at least one directory")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Year (e.g. 2025)").
				Value(&yearInput).
				Validate(func(s string) error {
					year, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || year <= 0 {
						return fmt.Errorf("enter a positive calendar year")
					}
					return nil
				}),
		).WithHideFunc(func() bool {
			return mode != string(summary.Annual)
		}),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Include hidden files and directories?").
				Value(&includeHidden),

			huh.NewConfirm().
				Title("Merge similarly named files (count only the newest)?").
				Value(&mergeSimilar),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt cancelled: %w", err)
	}

	year := 0
	runMode := summary.Lifetime
	if mode == string(summary.Annual) {
		runMode = summary.Annual
		year, err = strconv.Atoi(strings.TrimSpace(yearInput))
		if err != nil || year <= 0 {
			return fmt.Errorf("invalid year %q", yearInput)
		}
	}

	return runReport(cfg, runOptions{
		roots: parseRoots(rootInput),
		agg: aggregator.Options{
			IncludeHidden: includeHidden,
			MergeSimilar:  mergeSimilar,
			Year:          year,
		},
		mode: runMode,
		year: year,
	})
}
