package report

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// ExportOptions selects which documents Export writes.
type ExportOptions struct {
	Markdown bool
	JSON     bool
}

// Export writes the selected report documents into dir, creating it if
// needed, and returns the paths written. Filenames are date-stamped:
// Code_Report_2026-08-31.md for lifetime runs, Annual_2025_Report_... for
// annual ones. The two documents are independent files and are written
// concurrently.
func Export(dir string, r Report, opts ExportOptions) ([]string, error) {
	if !opts.Markdown && !opts.JSON {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}

	tag := "Code"
	if r.annual() {
		tag = fmt.Sprintf("Annual_%d", r.Year)
	}
	date := r.GeneratedAt.Format("2006-01-02")

	var paths []string
	var g errgroup.Group

	if opts.Markdown {
		path := filepath.Join(dir, fmt.Sprintf("%s_Report_%s.md", tag, date))
		paths = append(paths, path)
		g.Go(func() error {
			return writeFile(path, func(f *os.File) error {
				return WriteMarkdown(f, r)
			})
		})
	}
	if opts.JSON {
		path := filepath.Join(dir, fmt.Sprintf("%s_Report_%s.json", tag, date))
		paths = append(paths, path)
		g.Go(func() error {
			return writeFile(path, func(f *os.File) error {
				return WriteJSON(f, r)
			})
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
