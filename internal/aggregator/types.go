// Package aggregator rolls per-project file scans up into run-wide totals.
package aggregator

import "time"

// Options controls an aggregation run.
type Options struct {
	// IncludeHidden includes dot-prefixed files and directories.
	IncludeHidden bool

	// MergeSimilar collapses files sharing a normalized base name down to
	// the most recently modified one, so versioned copies are not counted
	// several times.
	MergeSimilar bool

	// Year restricts the run to files from that calendar year. Zero means
	// lifetime mode.
	Year int
}

// ProjectTotals holds the rolled-up totals of a single project directory.
type ProjectTotals struct {
	FileCount        int        `json:"file_count"`
	TotalSize        int64      `json:"total_size"`
	TotalLines       int        `json:"total_lines"`
	EarliestFileTime *time.Time `json:"earliest_file_time"`
}

// LanguageTotals holds the run-wide totals for one language label.
type LanguageTotals struct {
	Files int   `json:"files"`
	Lines int   `json:"lines"`
	Size  int64 `json:"size"`
}

// Result is the output of one aggregation run. Earliest and Latest are nil
// when no file matched at all.
type Result struct {
	Projects  map[string]ProjectTotals  `json:"projects"`
	Languages map[string]LanguageTotals `json:"languages"`
	Earliest  *time.Time                `json:"earliest_file_time"`
	Latest    *time.Time                `json:"latest_file_time"`
}
