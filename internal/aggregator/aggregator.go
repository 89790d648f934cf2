package aggregator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/YCTS-otree/codelife/internal/scanner"
)

// Collect enumerates the immediate subdirectories of each root as candidate
// projects, scans them, and returns per-project and per-language totals along
// with the earliest and latest file timestamps across the whole run.
//
// Roots that do not exist or are not directories contribute nothing. A real
// (symlink-resolved) project directory is counted at most once even when it
// is reachable from several roots, and the visited set handed to the scanner
// is shared across the run so no physical directory is walked twice. Projects
// left with zero files after filtering are omitted entirely.
func Collect(roots []string, opts Options) Result {
	res := Result{
		Projects:  make(map[string]ProjectTotals),
		Languages: make(map[string]LanguageTotals),
	}
	visitedDirs := make(map[string]bool)
	visitedProjects := make(map[string]bool)
	scanOpts := scanner.Options{IncludeHidden: opts.IncludeHidden, Year: opts.Year}

	for _, root := range roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		if info, err := os.Stat(absRoot); err != nil || !info.IsDir() {
			continue
		}
		entries, err := os.ReadDir(absRoot)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			projectPath := filepath.Join(absRoot, name)

			// Stat rather than entry type so a symlinked project
			// directory still qualifies.
			info, err := os.Stat(projectPath)
			if err != nil || !info.IsDir() {
				continue
			}
			if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
				continue
			}

			real := scanner.RealPath(projectPath)
			if visitedProjects[real] {
				continue
			}
			visitedProjects[real] = true

			key := uniqueProjectName(res.Projects, name, absRoot)

			files := scanner.Scan(projectPath, scanOpts, visitedDirs)
			if len(files) == 0 {
				continue
			}

			// Timestamp extrema are taken before merging, matching
			// the recorded behavior of earlier releases.
			earliest := files[0].ModTime
			latest := files[0].ModTime
			for _, f := range files[1:] {
				if f.ModTime.Before(earliest) {
					earliest = f.ModTime
				}
				if f.ModTime.After(latest) {
					latest = f.ModTime
				}
			}

			if opts.MergeSimilar {
				files = mergeSimilar(files)
			}

			var totals ProjectTotals
			for _, f := range files {
				lines, err := scanner.CountLines(f.Path)
				if err != nil {
					// Unreadable files still count their size.
					lines = 0
				}

				totals.FileCount++
				totals.TotalSize += f.Size
				totals.TotalLines += lines

				lt := res.Languages[f.Language]
				lt.Files++
				lt.Size += f.Size
				lt.Lines += lines
				res.Languages[f.Language] = lt
			}

			e := earliest
			totals.EarliestFileTime = &e
			res.Projects[key] = totals

			if res.Earliest == nil || earliest.Before(*res.Earliest) {
				res.Earliest = &e
			}
			if res.Latest == nil || latest.After(*res.Latest) {
				l := latest
				res.Latest = &l
			}
		}
	}

	return res
}

// uniqueProjectName resolves key collisions across roots: the bare name if
// free, then "name (roottag)", then "name (roottag-N)" counting up from 2.
func uniqueProjectName(projects map[string]ProjectTotals, name, root string) string {
	if _, taken := projects[name]; !taken {
		return name
	}
	tag := filepath.Base(root)
	if tag == "." || tag == string(filepath.Separator) || tag == "" {
		tag = "root"
	}
	candidate := fmt.Sprintf("%s (%s)", name, tag)
	if _, taken := projects[candidate]; !taken {
		return candidate
	}
	for n := 2; ; n++ {
		candidate = fmt.Sprintf("%s (%s-%d)", name, tag, n)
		if _, taken := projects[candidate]; !taken {
			return candidate
		}
	}
}
