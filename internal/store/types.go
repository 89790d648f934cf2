// Package store persists past report runs in SQLite.
package store

import "time"

// Run is a stored snapshot of one report run's summary.
type Run struct {
	ID           int64      `json:"id"`
	TakenAt      time.Time  `json:"taken_at"`
	Mode         string     `json:"mode"`
	Year         int        `json:"year,omitempty"`
	Version      string     `json:"version"`
	ProjectCount int        `json:"project_count"`
	TotalFiles   int        `json:"total_files"`
	TotalLines   int        `json:"total_lines"`
	TotalSize    int64      `json:"total_size"`
	Keystrokes   int64      `json:"keystrokes"`
	ElapsedDays  int        `json:"elapsed_days"`
	Earliest     *time.Time `json:"earliest_file_time,omitempty"`
	Latest       *time.Time `json:"latest_file_time,omitempty"`
}

// RunLanguage is the per-language breakdown of a stored run.
type RunLanguage struct {
	ID       int64  `json:"id"`
	RunID    int64  `json:"run_id"`
	Language string `json:"language"`
	Files    int    `json:"files"`
	Lines    int    `json:"lines"`
	Size     int64  `json:"size"`
}

// RunProject is the per-project breakdown of a stored run.
type RunProject struct {
	ID         int64      `json:"id"`
	RunID      int64      `json:"run_id"`
	Project    string     `json:"project"`
	FileCount  int        `json:"file_count"`
	TotalSize  int64      `json:"total_size"`
	TotalLines int        `json:"total_lines"`
	Earliest   *time.Time `json:"earliest_file_time,omitempty"`
}
