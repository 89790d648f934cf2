package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/YCTS-otree/codelife/internal/output"
	"github.com/YCTS-otree/codelife/internal/summary"
)

// RenderConsole writes the styled terminal report to w.
func RenderConsole(w io.Writer, r Report) {
	s := r.Summary

	fmt.Fprintln(w, output.Section(r.Title()))
	if r.annual() {
		fmt.Fprintf(w, " %s %s\n",
			output.StyleLabel.Render("Year:"),
			output.StyleValue.Render(fmt.Sprintf("%d", r.Year)))
	}
	if s.Earliest != nil {
		fmt.Fprintf(w, " %s %s\n",
			output.StyleLabel.Render("First file written:"),
			output.StyleMuted.Render(s.Earliest.Format("2006-01-02 15:04:05")))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, " %s %s\n",
		output.StyleLabel.Render("Projects:"),
		output.StyleAccent.Render(fmt.Sprintf("%d", s.ProjectCount)))
	fmt.Fprintf(w, " %s %s\n",
		output.StyleLabel.Render("Total lines:"),
		output.StyleLines.Render(humanize.Comma(int64(s.TotalLines))))
	fmt.Fprintf(w, " %s %s\n",
		output.StyleLabel.Render("Total files:"),
		output.StyleFiles.Render(fmt.Sprintf("%d", s.TotalFiles)))
	fmt.Fprintf(w, " %s %s\n",
		output.StyleLabel.Render("Accumulated size:"),
		output.StyleSize.Render(s.TotalSizeHuman))
	fmt.Fprintf(w, " %s %s\n",
		output.StyleLabel.Render("Keystrokes:"),
		output.StyleKeys.Render(humanize.Comma(s.Keystrokes)))
	fmt.Fprintf(w, " %s %s\n",
		output.StyleLabel.Render("Journey span:"),
		output.StyleValue.Render(fmt.Sprintf("%d days", s.ElapsedDays)))

	if len(r.Languages) > 0 {
		fmt.Fprintln(w, output.Section("By Language"))
		fmt.Fprintln(w)
		renderLanguageTable(w, r)
	}

	fmt.Fprintln(w, output.Section("Remarks"))
	fmt.Fprintln(w)
	for _, line := range r.RemarkLines() {
		fmt.Fprintf(w, " %s\n", line)
	}
	fmt.Fprintln(w)
	closing := "Keep going, the next sea of code awaits!"
	if r.annual() {
		closing = "That's a wrap on the year. Keep changing the world with code!"
	}
	fmt.Fprintln(w, output.StyleAccent.Render(" "+closing))
	fmt.Fprintln(w)
}

func renderLanguageTable(w io.Writer, r Report) {
	tbl := output.NewTable("Language", "Files", "Lines", "Size")
	for _, label := range sortedLanguages(r.Languages) {
		entry := r.Languages[label]
		tbl.AddRow(
			label,
			fmt.Sprintf("%d", entry.Files),
			humanize.Comma(int64(entry.Lines)),
			entry.SizeHuman,
		)
	}
	fmt.Fprint(w, tbl.Render())
}

// sortedLanguages orders labels by line count descending, then name, so the
// table is stable between runs.
func sortedLanguages(langs map[string]LanguageEntry) []string {
	labels := make([]string, 0, len(langs))
	for label := range langs {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		a, b := langs[labels[i]], langs[labels[j]]
		if a.Lines != b.Lines {
			return a.Lines > b.Lines
		}
		return labels[i] < labels[j]
	})
	return labels
}

// RenderEmpty writes the message shown when a run found nothing.
func RenderEmpty(w io.Writer, mode summary.Mode, year int) {
	if mode == summary.Annual {
		fmt.Fprintf(w, "%s\n", output.StyleMuted.Render(
			fmt.Sprintf(" No classified files found for %d.", year)))
		return
	}
	fmt.Fprintf(w, "%s\n", output.StyleMuted.Render(" No classified files found."))
}

// FormatTime renders a nullable timestamp for human output.
func FormatTime(t *time.Time) string {
	if t == nil {
		return "unknown"
	}
	return t.Format("2006-01-02 15:04:05")
}
