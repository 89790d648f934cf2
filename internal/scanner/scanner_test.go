package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestScan_ClassifiedFilesOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.py", "print('hi')\n")
	writeFile(t, dir, "notes.txt", "not code\n")
	writeFile(t, dir, "sub/util.go", "package util\n")

	files := Scan(dir, Options{}, map[string]bool{})
	if len(files) != 2 {
		t.Fatalf("Scan found %d files, want 2", len(files))
	}
	langs := map[string]bool{}
	for _, f := range files {
		langs[f.Language] = true
		if f.Size == 0 {
			t.Errorf("file %s has zero size", f.Name)
		}
		if f.ModTime.IsZero() {
			t.Errorf("file %s has zero timestamp", f.Name)
		}
	}
	if !langs["Python"] || !langs["Go"] {
		t.Errorf("languages = %v, want Python and Go", langs)
	}
}

func TestScan_HiddenFiltering(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "visible.py", "x = 1\n")
	writeFile(t, dir, ".hidden.py", "x = 2\n")
	writeFile(t, dir, ".git/hooks.py", "x = 3\n")
	writeFile(t, dir, "nested/.cache/gen.py", "x = 4\n")

	files := Scan(dir, Options{}, map[string]bool{})
	if len(files) != 1 {
		t.Fatalf("Scan found %d files, want 1", len(files))
	}
	if files[0].Name != "visible.py" {
		t.Errorf("found %s, want visible.py", files[0].Name)
	}

	all := Scan(dir, Options{IncludeHidden: true}, map[string]bool{})
	if len(all) != 4 {
		t.Errorf("Scan with IncludeHidden found %d files, want 4", len(all))
	}
}

func TestScan_VisitedSetPrunesRedescent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pkg/a.py", "a = 1\n")

	visited := map[string]bool{}
	first := Scan(dir, Options{}, visited)
	if len(first) != 1 {
		t.Fatalf("first scan found %d files, want 1", len(first))
	}

	// The same physical tree is never scanned twice within a run.
	second := Scan(dir, Options{}, visited)
	if len(second) != 0 {
		t.Errorf("second scan found %d files, want 0", len(second))
	}
}

func TestScan_YearFilterBoundary(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "eve.py", "print('almost midnight')\n")

	// Last second of 2023.
	stamp := time.Date(2023, time.December, 31, 23, 59, 59, 0, time.Local)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	if got := Scan(dir, Options{Year: 2023}, map[string]bool{}); len(got) != 1 {
		t.Errorf("Year 2023 scan found %d files, want 1", len(got))
	}
	if got := Scan(dir, Options{Year: 2024}, map[string]bool{}); len(got) != 0 {
		t.Errorf("Year 2024 scan found %d files, want 0", len(got))
	}
}

func TestScan_MissingDirectory(t *testing.T) {
	files := Scan(filepath.Join(t.TempDir(), "nope"), Options{}, map[string]bool{})
	if len(files) != 0 {
		t.Errorf("Scan of missing dir found %d files, want 0", len(files))
	}
}

func TestCountLines_NonBlankOnly(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sample.py", "a = 1\n\n   \n\tb = 2\n   c\n\n")

	got, err := CountLines(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("CountLines = %d, want 3", got)
	}
}

func TestCountLines_NoTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "last.go", "package last\nvar x = 1")

	got, err := CountLines(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Errorf("CountLines = %d, want 2", got)
	}
}

func TestCountLines_InvalidUTF8Tolerated(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bin.c", "int x;\n\xff\xfe\x00garbage\nint y;\n")

	got, err := CountLines(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("CountLines = %d, want 3", got)
	}
}

func TestCountLines_MissingFile(t *testing.T) {
	if _, err := CountLines(filepath.Join(t.TempDir(), "gone.py")); err == nil {
		t.Error("expected error for missing file")
	}
}
