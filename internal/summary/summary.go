// Package summary derives run-wide headline metrics from aggregation results.
package summary

import (
	"fmt"
	"time"

	"github.com/YCTS-otree/codelife/internal/aggregator"
)

// Mode selects how the elapsed-day span is anchored.
type Mode string

const (
	// Lifetime measures from the earliest file to now.
	Lifetime Mode = "lifetime"

	// Annual measures from the earliest to the latest file observed in the
	// filtered year.
	Annual Mode = "annual"
)

// Summary is the headline record of one run. Field names are stable; the
// console renderer and the Markdown/JSON exporters consume them verbatim.
type Summary struct {
	ProjectCount   int        `json:"project_count"`
	TotalFiles     int        `json:"total_files"`
	TotalLines     int        `json:"total_lines"`
	TotalSize      int64      `json:"total_size"`
	TotalSizeHuman string     `json:"total_size_human"`
	Keystrokes     int64      `json:"keystrokes"`
	ElapsedDays    int        `json:"elapsed_days"`
	Earliest       *time.Time `json:"earliest_file_time"`
	Latest         *time.Time `json:"latest_file_time"`
}

// Build computes the summary for an aggregation result. A result with no
// files yields an all-zero summary with nil timestamps.
func Build(res aggregator.Result, mode Mode, now time.Time) Summary {
	s := Summary{
		ProjectCount: len(res.Projects),
		Earliest:     res.Earliest,
		Latest:       res.Latest,
	}
	for _, p := range res.Projects {
		s.TotalFiles += p.FileCount
		s.TotalLines += p.TotalLines
		s.TotalSize += p.TotalSize
	}
	s.TotalSizeHuman = HumanSize(s.TotalSize)
	s.Keystrokes = Keystrokes(s.TotalSize)
	s.ElapsedDays = elapsedDays(res.Earliest, res.Latest, mode, now)
	return s
}

// HumanSize renders a byte count in the largest unit keeping the value under
// 1024, with two decimal places.
func HumanSize(size int64) string {
	v := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if v < 1024 {
			return fmt.Sprintf("%.2f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.2f TB", v)
}

// Keystrokes estimates keystrokes from byte volume at the fixed ratio of
// 1.5 bytes per keystroke. Crude on purpose; the integer form floor(2n/3)
// avoids float rounding.
func Keystrokes(size int64) int64 {
	return size * 2 / 3
}

// elapsedDays is the whole number of days between the earliest file and the
// reference end: now in lifetime mode, the latest file in annual mode. Zero
// when either timestamp is missing.
func elapsedDays(earliest, latest *time.Time, mode Mode, now time.Time) int {
	if earliest == nil || latest == nil {
		return 0
	}
	end := now
	if mode == Annual {
		end = *latest
	}
	if end.Before(*earliest) {
		return 0
	}
	return int(end.Sub(*earliest) / (24 * time.Hour))
}
