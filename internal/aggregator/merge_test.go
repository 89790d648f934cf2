package aggregator

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/YCTS-otree/codelife/internal/scanner"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"report1.py", "report"},
		{"report_2.py", "report"},
		{"report-03.py", "report"},
		{"script.py", "script"},
		{"script_v2.py", "script_v"},
		{"v2.py", "v"},
		{"v3.py", "v"},
		{"backup.2024.01.py", "backup"},
		{"plain.go", "plain"},
	}

	for _, tc := range tests {
		if got := normalizeName(tc.name); got != tc.want {
			t.Errorf("normalizeName(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestMergeSimilar_KeepsLatest(t *testing.T) {
	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now()

	files := []scanner.FileRecord{
		{Name: "draft1.py", Language: "Python", Size: 100, ModTime: old},
		{Name: "draft2.py", Language: "Python", Size: 200, ModTime: recent},
		{Name: "other.go", Language: "Go", Size: 50, ModTime: old},
	}

	merged := mergeSimilar(files)
	if len(merged) != 2 {
		t.Fatalf("merged length = %d, want 2", len(merged))
	}
	if merged[0].Name != "draft2.py" {
		t.Errorf("kept %s, want draft2.py (the newest of the colliding pair)", merged[0].Name)
	}
	if merged[1].Name != "other.go" {
		t.Errorf("kept %s, want other.go", merged[1].Name)
	}
}

func TestCollect_MergeSimilarFiles(t *testing.T) {
	root := t.TempDir()
	oldPath := writeProjectFile(t, root, "proj", "notes1.py", "a = 1\n")
	writeProjectFile(t, root, "proj", "notes2.py", "b = 1\nb = 2\n")

	stale := time.Now().Add(-72 * time.Hour)
	if err := os.Chtimes(oldPath, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	res := Collect([]string{root}, Options{MergeSimilar: true})

	proj := res.Projects["proj"]
	if proj.FileCount != 1 {
		t.Fatalf("file count = %d, want 1 (older duplicate dropped)", proj.FileCount)
	}
	if proj.TotalLines != 2 {
		t.Errorf("total lines = %d, want 2 (the newer file's lines)", proj.TotalLines)
	}
	if filepath.Base(oldPath) != "notes1.py" {
		t.Fatalf("fixture moved unexpectedly")
	}
}

func TestCollect_MergeDisabledKeepsAll(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "proj", "notes1.py", "a = 1\n")
	writeProjectFile(t, root, "proj", "notes2.py", "b = 1\n")

	res := Collect([]string{root}, Options{})
	if res.Projects["proj"].FileCount != 2 {
		t.Errorf("file count = %d, want 2", res.Projects["proj"].FileCount)
	}
}
