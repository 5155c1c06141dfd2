package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ajxudir/globup/pkg/vercmp"
)

// Candidate row styling. Colors follow the usual upgrade palette: red for
// major bumps, yellow for minor, green for patch. The manager tag is dimmed
// so package names stay the focus of the list.
var (
	styleMajor   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleMinor   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	stylePatch   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleManager = lipgloss.NewStyle().Faint(true)
)

// CandidateRow describes one upgradable package as presented to the user.
//
// Fields:
//   - Manager: Manager that installed the package (e.g., "npm")
//   - Name: Package name, including any scope prefix
//   - Current: Version currently installed
//   - Latest: Version published under the registry's latest tag
//   - Severity: Upgrade severity label (vercmp.SeverityMajor/Minor/Patch)
type CandidateRow struct {
	Manager  string
	Name     string
	Current  string
	Latest   string
	Severity string
}

// FormatCandidateRows lays out candidate rows as aligned terminal lines.
//
// It performs the following operations:
//   - Step 1: Measures the widest name, current, and latest values
//   - Step 2: Pads every cell to its column width using display width
//   - Step 3: Colors the latest version by severity and dims the manager tag
//
// Padding happens before styling so column math runs on plain text; ANSI
// escape sequences never count toward a cell's width.
//
// Parameters:
//   - rows: Candidate rows in the order they should be listed
//
// Returns:
//   - []string: One rendered line per row, e.g. "typescript  5.3.3 → 5.4.2  [npm]"
func FormatCandidateRows(rows []CandidateRow) []string {
	nameWidth := 0
	currentWidth := 0
	latestWidth := 0
	for _, row := range rows {
		if w := displayWidth(row.Name); w > nameWidth {
			nameWidth = w
		}
		if w := displayWidth(row.Current); w > currentWidth {
			currentWidth = w
		}
		if w := displayWidth(row.Latest); w > latestWidth {
			latestWidth = w
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		latest := severityStyle(row.Severity).Render(toWidth(row.Latest, latestWidth))
		tag := styleManager.Render("[" + row.Manager + "]")

		line := toWidth(row.Name, nameWidth) +
			"  " + toWidth(row.Current, currentWidth) +
			" → " + latest +
			"  " + tag
		lines = append(lines, line)
	}

	return lines
}

// PrintCandidateList prints the outdated-package count followed by the
// aligned candidate rows. Used on non-interactive runs where no selection
// form shows the rows.
//
// Parameters:
//   - w: Writer to output to
//   - rows: Candidate rows in display order
//
// Example output:
//
//	Found 2 outdated package(s):
//	typescript  5.3.3  → 5.4.2   [npm]
//	eslint      8.56.0 → 9.12.0  [bun]
func PrintCandidateList(w io.Writer, rows []CandidateRow) {
	_, _ = fmt.Fprintf(w, "Found %d outdated package(s):\n", len(rows))
	for _, line := range FormatCandidateRows(rows) {
		_, _ = fmt.Fprintln(w, line)
	}
}

// severityStyle maps a severity label to its row style.
//
// Parameters:
//   - severity: One of the vercmp severity labels
//
// Returns:
//   - lipgloss.Style: Style for the latest-version cell; patch green when unrecognized
func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case vercmp.SeverityMajor:
		return styleMajor
	case vercmp.SeverityMinor:
		return styleMinor
	default:
		return stylePatch
	}
}

// displayWidth returns the terminal display width of a string, counting
// wide characters as two columns.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// toWidth pads a string with spaces to the given display width. Strings
// already at or beyond the width are returned unchanged.
func toWidth(s string, width int) string {
	current := displayWidth(s)
	if current >= width {
		return s
	}
	return s + strings.Repeat(" ", width-current)
}
