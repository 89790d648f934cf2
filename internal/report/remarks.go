package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Remarks are the tiered achievement lines printed under the totals. The
// thresholds follow the tiers the report has always used.

// LinesRemark comments on the accumulated line count.
func LinesRemark(lines int) string {
	n := humanize.Comma(int64(lines))
	switch {
	case lines < 1000:
		return fmt.Sprintf("A refined %s lines, every one of them considered", n)
	case lines < 10000:
		return fmt.Sprintf("From hello world to %s lines, the growth is visible", n)
	case lines < 20000:
		return fmt.Sprintf("%s lines! That is a technical novel's worth of code", n)
	case lines < 30000:
		return fmt.Sprintf("%s lines accumulated, the summit is in sight", n)
	case lines < 50000:
		return fmt.Sprintf("%s lines?! Respect", n)
	default:
		return fmt.Sprintf("Legendary programmer alert: %s lines and counting", n)
	}
}

// ProjectsRemark comments on the number of projects.
func ProjectsRemark(projects int) string {
	switch {
	case projects >= 40:
		return fmt.Sprintf("%d projects?! Do you live inside the IDE?", projects)
	case projects >= 30:
		return fmt.Sprintf("Certified project machine: %d works across the stack", projects)
	case projects >= 20:
		return fmt.Sprintf("%d little worlds, each one its own adventure", projects)
	case projects >= 10:
		return fmt.Sprintf("%d seeds planted; what will bloom next year?", projects)
	default:
		return fmt.Sprintf("Focus is a virtue: %d projects mark the road from zero to one", projects)
	}
}

// KeystrokesRemark comments on the estimated keystroke count.
func KeystrokesRemark(keystrokes int64) string {
	n := humanize.Comma(keystrokes)
	switch {
	case keystrokes < 50000:
		return fmt.Sprintf("%s keystrokes, each character a crystallized thought", n)
	case keystrokes < 100000:
		return fmt.Sprintf("%s keystrokes! The keyboard is blooming", n)
	case keystrokes < 1000000:
		return fmt.Sprintf("Keyboard status: smoking. %s keystrokes of effort", n)
	case keystrokes < 2000000:
		return fmt.Sprintf("%s keystrokes, welcome to the million-keystroke club", n)
	default:
		return fmt.Sprintf("%s keystrokes?! So you are why keyboards keep getting pricier", n)
	}
}

// SizeRemark comments on the accumulated byte volume.
func SizeRemark(sizeHuman string) string {
	return fmt.Sprintf("Your projects weigh in at %s of accumulated knowledge", sizeHuman)
}

// DurationRemark comments on the coding journey's span in days.
func DurationRemark(days int) string {
	switch {
	case days >= 1825:
		return fmt.Sprintf("An old hand now. Remember the first file you wrote %d years ago?", days/365)
	case days >= 1000:
		return fmt.Sprintf("%d days of dedication; coding is part of life now", days)
	case days >= 500:
		return fmt.Sprintf("The thousand-day plan is underway: %d days of compounding", days)
	case days >= 100:
		return fmt.Sprintf("%d days of steady accumulation", days)
	default:
		return fmt.Sprintf("The first line was planted %d days ago; plenty ahead", days)
	}
}

// Annual variants keep the same shape but speak about a single year.

// AnnualLinesRemark comments on one year's line count.
func AnnualLinesRemark(lines int) string {
	return fmt.Sprintf("%s lines written this year", humanize.Comma(int64(lines)))
}

// AnnualProjectsRemark comments on one year's project count.
func AnnualProjectsRemark(projects int) string {
	return fmt.Sprintf("%d projects touched this year", projects)
}

// AnnualKeystrokesRemark comments on one year's keystroke estimate.
func AnnualKeystrokesRemark(keystrokes int64) string {
	return fmt.Sprintf("%s keystrokes over the year", humanize.Comma(keystrokes))
}

// AnnualSizeRemark comments on one year's byte volume.
func AnnualSizeRemark(sizeHuman string) string {
	return fmt.Sprintf("%s of code shipped this year", sizeHuman)
}

// AnnualDurationRemark comments on one year's active span.
func AnnualDurationRemark(days int) string {
	return fmt.Sprintf("%d days between the year's first and last file", days)
}

// RemarkLines returns the remark block for a report, annual or lifetime.
func (r Report) RemarkLines() []string {
	s := r.Summary
	if r.annual() {
		return []string{
			AnnualProjectsRemark(s.ProjectCount),
			AnnualLinesRemark(s.TotalLines),
			AnnualKeystrokesRemark(s.Keystrokes),
			AnnualSizeRemark(s.TotalSizeHuman),
			AnnualDurationRemark(s.ElapsedDays),
		}
	}
	return []string{
		ProjectsRemark(s.ProjectCount),
		LinesRemark(s.TotalLines),
		KeystrokesRemark(s.Keystrokes),
		SizeRemark(s.TotalSizeHuman),
		DurationRemark(s.ElapsedDays),
	}
}
