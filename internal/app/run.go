package app

import (
	"fmt"
	"os"
	"time"

	"github.com/YCTS-otree/codelife/internal/aggregator"
	"github.com/YCTS-otree/codelife/internal/config"
	"github.com/YCTS-otree/codelife/internal/output"
	"github.com/YCTS-otree/codelife/internal/report"
	"github.com/YCTS-otree/codelife/internal/store"
	"github.com/YCTS-otree/codelife/internal/summary"
)

// runOptions carries everything one report run needs, whichever command or
// wizard step assembled it.
type runOptions struct {
	roots    []string
	agg      aggregator.Options
	mode     summary.Mode
	year     int
	asJSON   bool
	noExport bool
}

// runReport is the shared pipeline behind report, annual, and the wizard:
// aggregate, summarize, render, export, and record the run.
func runReport(cfg *config.Config, opts runOptions) error {
	roots := opts.roots
	if len(roots) == 0 {
		roots = cfg.ScanPaths
	}
	if len(roots) == 0 {
		return fmt.Errorf("no roots to scan: pass directories or set scan_paths in the config")
	}
	for _, root := range roots {
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: not a directory\n", root)
		}
	}

	now := time.Now()
	res := aggregator.Collect(roots, opts.agg)
	sum := summary.Build(res, opts.mode, now)
	rep := report.New(res, sum, opts.mode, opts.year, now)

	if opts.asJSON {
		return report.WriteJSON(os.Stdout, rep)
	}

	if sum.TotalFiles == 0 {
		report.RenderEmpty(os.Stdout, opts.mode, opts.year)
		return nil
	}

	report.RenderConsole(os.Stdout, rep)

	if !opts.noExport {
		paths, err := report.Export(cfg.Export.Dir, rep, report.ExportOptions{
			Markdown: cfg.Export.Markdown,
			JSON:     cfg.Export.JSON,
		})
		if err != nil {
			return fmt.Errorf("exporting report: %w", err)
		}
		for _, path := range paths {
			fmt.Printf(" %s %s\n", output.StyleMuted.Render("Report written:"), path)
		}
		if len(paths) > 0 {
			fmt.Println()
		}
	}

	// Run history is best-effort; a broken database never fails the report.
	if err := recordRun(rep); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run history: %v\n", err)
	}

	return nil
}

// recordRun stores the run's summary and breakdowns in the history database.
func recordRun(rep report.Report) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	s := rep.Summary
	runID, err := db.InsertRun(&store.Run{
		TakenAt:      rep.GeneratedAt.UTC(),
		Mode:         string(rep.Mode),
		Year:         rep.Year,
		Version:      appVersion,
		ProjectCount: s.ProjectCount,
		TotalFiles:   s.TotalFiles,
		TotalLines:   s.TotalLines,
		TotalSize:    s.TotalSize,
		Keystrokes:   s.Keystrokes,
		ElapsedDays:  s.ElapsedDays,
		Earliest:     s.Earliest,
		Latest:       s.Latest,
	})
	if err != nil {
		return err
	}

	for label, entry := range rep.Languages {
		if err := db.InsertRunLanguage(&store.RunLanguage{
			RunID:    runID,
			Language: label,
			Files:    entry.Files,
			Lines:    entry.Lines,
			Size:     entry.Size,
		}); err != nil {
			return err
		}
	}
	for name, totals := range rep.Projects {
		if err := db.InsertRunProject(&store.RunProject{
			RunID:      runID,
			Project:    name,
			FileCount:  totals.FileCount,
			TotalSize:  totals.TotalSize,
			TotalLines: totals.TotalLines,
			Earliest:   totals.EarliestFileTime,
		}); err != nil {
			return err
		}
	}

	return nil
}
