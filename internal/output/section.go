package output

import (
	"fmt"
	"strings"
)

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// TrendArrow returns a styled indicator for a delta between two runs.
// Positive deltas show an up arrow, negative show down, zero shows a dash.
func TrendArrow(delta int64) string {
	switch {
	case delta > 0:
		return StyleLines.Render(fmt.Sprintf("▲ +%d", delta))
	case delta < 0:
		return StyleKeys.Render(fmt.Sprintf("▼ %d", delta))
	default:
		return StyleMuted.Render("─")
	}
}
