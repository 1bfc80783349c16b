// Package styles provides shared lipgloss styles for terminal output.
//
// This package centralizes color definitions so the doctor checks and the
// verbose section summary render consistently. Callers route styled output
// through a colorprofile writer so it degrades to the terminal's actual
// capabilities (and to plain text when not a TTY).
package styles

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

// Colors used throughout the CLI output
var (
	// Success is used for checkmarks and positive outcomes (green)
	Success = lipgloss.Color("82")

	// Error is used for failed checks and error messages (red)
	Error = lipgloss.Color("196")

	// Warn is used for optional/degraded findings (orange)
	Warn = lipgloss.Color("214")

	// Muted is used for secondary text (gray)
	Muted = lipgloss.Color("240")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// WarnStyle applies the warn color
	WarnStyle = lipgloss.NewStyle().Foreground(Warn)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Check symbols for doctor-style output
const (
	OKSymbol   = "✓"
	FailSymbol = "✗"
	WarnSymbol = "⚠"
)

// OK renders a green check line prefix.
func OK(text string) string {
	return SuccessStyle.Render(OKSymbol) + " " + text
}

// Fail renders a red cross line prefix.
func Fail(text string) string {
	return ErrorStyle.Render(FailSymbol) + " " + text
}

// Warning renders an orange warning line prefix.
func Warning(text string) string {
	return WarnStyle.Render(WarnSymbol) + " " + text
}

// RenderTable renders a borderless table for the verbose section summary.
// lipgloss/table sizes the columns from their content; a right padding on
// every cell keeps them apart without border glyphs.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	headerStyle := Bold.PaddingRight(2)
	cellStyle := lipgloss.NewStyle().PaddingRight(2)

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.String() + "\n"
}
