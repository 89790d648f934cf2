// Package scanner walks project directory trees and produces file records.
package scanner

import "time"

// Options controls which files a scan includes.
type Options struct {
	// IncludeHidden includes dot-prefixed files and directories.
	IncludeHidden bool

	// Year restricts the scan to files whose timestamp falls in that
	// calendar year. Zero disables the filter.
	Year int
}

// FileRecord describes one classified file found during a scan.
type FileRecord struct {
	// Path is the full path to the file.
	Path string

	// Name is the file's base name.
	Name string

	// Language is the label assigned by the classifier.
	Language string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the file's modification timestamp.
	ModTime time.Time
}
