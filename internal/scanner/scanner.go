package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/YCTS-otree/codelife/internal/classifier"
)

// Scan walks the directory tree rooted at dir and returns a record for every
// classified file that survives the hidden and year filters.
//
// The visited set is keyed by symlink-resolved real path and is shared by the
// caller across an entire run: a directory already present in the set is not
// descended into again, so no physical directory is counted twice even when
// it is reachable through more than one logical path.
func Scan(dir string, opts Options, visited map[string]bool) []FileRecord {
	var files []FileRecord
	walk(dir, opts, visited, &files)
	return files
}

func walk(dir string, opts Options, visited map[string]bool, files *[]FileRecord) {
	real := RealPath(dir)
	if visited[real] {
		return
	}
	visited[real] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directories contribute nothing.
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		hidden := strings.HasPrefix(name, ".")
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if hidden && !opts.IncludeHidden {
				continue
			}
			walk(path, opts, visited, files)
			continue
		}

		if hidden && !opts.IncludeHidden {
			continue
		}
		lang, ok := classifier.Classify(name)
		if !ok {
			continue
		}

		info, err := statEntry(path, entry)
		if err != nil || info.IsDir() {
			// Broken symlinks and symlinked directories are skipped;
			// symlinked directories are never descended into here.
			continue
		}

		mod := info.ModTime()
		if opts.Year != 0 && mod.Year() != opts.Year {
			continue
		}

		*files = append(*files, FileRecord{
			Path:     path,
			Name:     name,
			Language: lang,
			Size:     info.Size(),
			ModTime:  mod,
		})
	}
}

// statEntry returns file info for a directory entry, following symlinks so
// that a link to a regular file is counted with its target's metadata.
func statEntry(path string, entry fs.DirEntry) (fs.FileInfo, error) {
	if entry.Type()&fs.ModeSymlink != 0 {
		return os.Stat(path)
	}
	return entry.Info()
}

// RealPath resolves symlinks in path, falling back to the absolute path when
// resolution fails (e.g. for dangling links).
func RealPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
