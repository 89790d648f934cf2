package aggregator

import (
	"regexp"
	"strings"

	"github.com/YCTS-otree/codelife/internal/scanner"
)

// trailingJunk matches the version-ish suffix stripped during normalization:
// any trailing run of digits, dots, underscores, and hyphens.
var trailingJunk = regexp.MustCompile(`[\d._-]+$`)

// normalizeName strips the extension and any trailing digit/separator run
// from a file name, so "report1.py" and "report_2.py" collide on "report".
// The heuristic is deliberately blunt: unrelated names sharing a stem
// ("v2.py" and "v3.py" both normalize to "v") collide too.
func normalizeName(name string) string {
	stem := name
	if idx := strings.LastIndex(name, "."); idx > 0 {
		stem = name[:idx]
	}
	return trailingJunk.ReplaceAllString(stem, "")
}

// mergeSimilar keeps, per normalized base name, only the record with the
// latest timestamp. Ties keep the record seen first. Output preserves
// first-seen order.
func mergeSimilar(files []scanner.FileRecord) []scanner.FileRecord {
	var order []string
	best := make(map[string]scanner.FileRecord)

	for _, f := range files {
		base := normalizeName(f.Name)
		cur, seen := best[base]
		if !seen {
			order = append(order, base)
			best[base] = f
			continue
		}
		if cur.ModTime.Before(f.ModTime) {
			best[base] = f
		}
	}

	merged := make([]scanner.FileRecord, 0, len(order))
	for _, base := range order {
		merged = append(merged, best[base])
	}
	return merged
}
