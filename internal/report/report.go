// Package report renders aggregation results for the console and for
// Markdown and JSON export.
package report

import (
	"time"

	"github.com/YCTS-otree/codelife/internal/aggregator"
	"github.com/YCTS-otree/codelife/internal/summary"
)

// LanguageEntry is a per-language line in the exported document: the raw
// totals plus the human-readable size.
type LanguageEntry struct {
	Files     int    `json:"files"`
	Lines     int    `json:"lines"`
	Size      int64  `json:"size"`
	SizeHuman string `json:"size_human"`
}

// Report is the full document handed to every renderer. Field names are the
// stable export contract.
type Report struct {
	GeneratedAt time.Time                           `json:"generated_at"`
	Mode        summary.Mode                        `json:"mode"`
	Year        int                                 `json:"year,omitempty"`
	Summary     summary.Summary                     `json:"summary"`
	Languages   map[string]LanguageEntry            `json:"languages"`
	Projects    map[string]aggregator.ProjectTotals `json:"projects"`
}

// New assembles a report document from an aggregation result.
func New(res aggregator.Result, sum summary.Summary, mode summary.Mode, year int, now time.Time) Report {
	langs := make(map[string]LanguageEntry, len(res.Languages))
	for label, lt := range res.Languages {
		langs[label] = LanguageEntry{
			Files:     lt.Files,
			Lines:     lt.Lines,
			Size:      lt.Size,
			SizeHuman: summary.HumanSize(lt.Size),
		}
	}
	return Report{
		GeneratedAt: now,
		Mode:        mode,
		Year:        year,
		Summary:     sum,
		Languages:   langs,
		Projects:    res.Projects,
	}
}

// Annual reports carry a year; everything else is lifetime.
func (r Report) annual() bool {
	return r.Mode == summary.Annual
}

// Title returns the report's headline.
func (r Report) Title() string {
	if r.annual() {
		return "Annual Coding Report"
	}
	return "Coding Life Report"
}
