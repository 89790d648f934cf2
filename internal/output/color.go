// Package output provides styled terminal rendering helpers for codelife.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorHeading is used for report titles and section headers.
	ColorHeading = lipgloss.Color("#4dd0e1")

	// ColorAccent is used for project counts and calls to action.
	ColorAccent = lipgloss.Color("#fff176")

	// ColorLines is used for line-count figures.
	ColorLines = lipgloss.Color("#81c784")

	// ColorFiles is used for file-count figures.
	ColorFiles = lipgloss.Color("#64b5f6")

	// ColorSize is used for byte-volume figures.
	ColorSize = lipgloss.Color("#ba68c8")

	// ColorKeys is used for the keystroke figure.
	ColorKeys = lipgloss.Color("#e57373")

	// ColorMuted is used for secondary text and rules.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorHeading).
			Bold(true)

	// StyleAccent is used for emphasized counts.
	StyleAccent = lipgloss.NewStyle().
			Foreground(ColorAccent)

	// StyleLines styles line-count values.
	StyleLines = lipgloss.NewStyle().
			Foreground(ColorLines)

	// StyleFiles styles file-count values.
	StyleFiles = lipgloss.NewStyle().
			Foreground(ColorFiles)

	// StyleSize styles byte-volume values.
	StyleSize = lipgloss.NewStyle().
			Foreground(ColorSize)

	// StyleKeys styles the keystroke value.
	StyleKeys = lipgloss.NewStyle().
			Foreground(ColorKeys)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)

	// StyleLabel is used for metric labels.
	StyleLabel = lipgloss.NewStyle().Width(22)

	// StyleValue is used for metric values.
	StyleValue = lipgloss.NewStyle().
			Bold(true).
			Width(14)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleAccent = plain
		StyleLines = plain
		StyleFiles = plain
		StyleSize = plain
		StyleKeys = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(22)
		StyleValue = plain.Width(14)
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// AutoColor disables color when stdout is not a terminal, unless forced.
func AutoColor(force bool) {
	if force {
		SetNoColor(true)
		return
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		SetNoColor(true)
	}
}
