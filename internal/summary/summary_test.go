package summary

import (
	"testing"
	"time"

	"github.com/YCTS-otree/codelife/internal/aggregator"
)

func TestHumanSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0.00 B"},
		{1023, "1023.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{1073741824, "1.00 GB"},
		{1099511627776, "1.00 TB"},
	}

	for _, tc := range tests {
		if got := HumanSize(tc.size); got != tc.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tc.size, got, tc.want)
		}
	}
}

func TestKeystrokes(t *testing.T) {
	tests := []struct {
		size int64
		want int64
	}{
		{0, 0},
		{1500, 1000},
		{3, 2},
		{4, 2},
		{1, 0},
	}

	for _, tc := range tests {
		if got := Keystrokes(tc.size); got != tc.want {
			t.Errorf("Keystrokes(%d) = %d, want %d", tc.size, got, tc.want)
		}
	}
}

func TestBuild_Totals(t *testing.T) {
	e1 := time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC)
	e2 := time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)
	latest := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	res := aggregator.Result{
		Projects: map[string]aggregator.ProjectTotals{
			"alpha": {FileCount: 3, TotalSize: 1750, TotalLines: 55, EarliestFileTime: &e1},
			"beta":  {FileCount: 1, TotalSize: 800, TotalLines: 20, EarliestFileTime: &e2},
		},
		Languages: map[string]aggregator.LanguageTotals{
			"Python":     {Files: 3, Lines: 55, Size: 1750},
			"JavaScript": {Files: 1, Lines: 20, Size: 800},
		},
		Earliest: &e1,
		Latest:   &latest,
	}

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := Build(res, Lifetime, now)

	if s.ProjectCount != 2 {
		t.Errorf("ProjectCount = %d, want 2", s.ProjectCount)
	}
	if s.TotalFiles != 4 {
		t.Errorf("TotalFiles = %d, want 4", s.TotalFiles)
	}
	if s.TotalLines != 75 {
		t.Errorf("TotalLines = %d, want 75", s.TotalLines)
	}
	if s.TotalSize != 2550 {
		t.Errorf("TotalSize = %d, want 2550", s.TotalSize)
	}
	if s.TotalSizeHuman != "2.49 KB" {
		t.Errorf("TotalSizeHuman = %q, want %q", s.TotalSizeHuman, "2.49 KB")
	}
	if s.Keystrokes != 1700 {
		t.Errorf("Keystrokes = %d, want 1700", s.Keystrokes)
	}
	// 2020-03-01 to 2024-03-01 spans two leap days.
	if s.ElapsedDays != 1461 {
		t.Errorf("ElapsedDays = %d, want 1461", s.ElapsedDays)
	}
}

func TestBuild_AnnualUsesLatestFile(t *testing.T) {
	earliest := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	latest := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)

	res := aggregator.Result{
		Projects: map[string]aggregator.ProjectTotals{
			"proj": {FileCount: 1, TotalSize: 10, TotalLines: 1, EarliestFileTime: &earliest},
		},
		Languages: map[string]aggregator.LanguageTotals{"Go": {Files: 1, Lines: 1, Size: 10}},
		Earliest:  &earliest,
		Latest:    &latest,
	}

	// Now is far in the future; annual mode must ignore it.
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	s := Build(res, Annual, now)

	if s.ElapsedDays != 273 {
		t.Errorf("ElapsedDays = %d, want 273", s.ElapsedDays)
	}

	lifetime := Build(res, Lifetime, now)
	if lifetime.ElapsedDays <= s.ElapsedDays {
		t.Errorf("lifetime span %d should exceed annual span %d", lifetime.ElapsedDays, s.ElapsedDays)
	}
}

func TestBuild_EmptyRun(t *testing.T) {
	res := aggregator.Result{
		Projects:  map[string]aggregator.ProjectTotals{},
		Languages: map[string]aggregator.LanguageTotals{},
	}

	s := Build(res, Lifetime, time.Now())

	if s.ProjectCount != 0 || s.TotalFiles != 0 || s.TotalLines != 0 || s.TotalSize != 0 {
		t.Errorf("expected all-zero summary, got %+v", s)
	}
	if s.Keystrokes != 0 || s.ElapsedDays != 0 {
		t.Errorf("expected zero derived metrics, got %+v", s)
	}
	if s.Earliest != nil || s.Latest != nil {
		t.Error("expected nil timestamps")
	}
	if s.TotalSizeHuman != "0.00 B" {
		t.Errorf("TotalSizeHuman = %q, want %q", s.TotalSizeHuman, "0.00 B")
	}
}
