package scanner

import (
	"bufio"
	"os"
	"strings"
)

// maxLineSize bounds the scanner buffer so minified or generated files with
// very long lines do not fail the count.
const maxLineSize = 4 * 1024 * 1024

// CountLines counts the non-blank lines of the file at path. A line counts
// when it is non-empty after stripping leading and trailing whitespace.
// Bytes that are not valid UTF-8 pass through untouched, so binary junk in
// an otherwise recognized file does not abort the count.
//
// Callers decide what a failure means; the aggregator treats it as zero lines.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	count := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			count++
		}
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return count, nil
}
