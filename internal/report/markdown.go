package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// WriteMarkdown writes the report as GitHub-flavored markdown to w.
func WriteMarkdown(w io.Writer, r Report) error {
	fmt.Fprintf(w, "# %s\n\n", r.Title())
	if r.annual() {
		fmt.Fprintf(w, "> Year: %d\n", r.Year)
	} else {
		fmt.Fprintf(w, "> Date: %s\n", r.GeneratedAt.Format("2006-01-02"))
	}
	fmt.Fprintf(w, "> First file written: %s\n\n", FormatTime(r.Summary.Earliest))

	fmt.Fprintf(w, "## Overview\n\n")
	fmt.Fprintf(w, "| Metric | Value |\n")
	fmt.Fprintf(w, "|--------|-------|\n")
	fmt.Fprintf(w, "| Projects | %d |\n", r.Summary.ProjectCount)
	fmt.Fprintf(w, "| Files | %d |\n", r.Summary.TotalFiles)
	fmt.Fprintf(w, "| Lines | %s |\n", humanize.Comma(int64(r.Summary.TotalLines)))
	fmt.Fprintf(w, "| Size | %s |\n", r.Summary.TotalSizeHuman)
	fmt.Fprintf(w, "| Keystrokes | %s |\n", humanize.Comma(r.Summary.Keystrokes))
	fmt.Fprintf(w, "| Journey span | %d days |\n\n", r.Summary.ElapsedDays)

	fmt.Fprintf(w, "## Remarks\n\n")
	for _, line := range r.RemarkLines() {
		fmt.Fprintf(w, "- %s\n", line)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "## Languages\n\n")
	fmt.Fprintf(w, "| Language | Files | Lines | Size |\n")
	fmt.Fprintf(w, "|----------|------:|------:|-----:|\n")
	for _, label := range sortedLanguages(r.Languages) {
		entry := r.Languages[label]
		fmt.Fprintf(w, "| %s | %d | %s | %s |\n",
			label, entry.Files, humanize.Comma(int64(entry.Lines)), entry.SizeHuman)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "---\nKeep going, the next sea of code awaits!\n")
	return nil
}
