package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/globup/pkg/constants"
)

// PrintWarnings prints warning messages to the writer.
//
// Formats each warning on its own line with a warning icon prefix.
// Does nothing if warnings slice is empty.
// Prints a blank line before the warnings for separation.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - warnings: Slice of warning messages
//
// Example output:
//
//	<blank line>
//	⚠️ Warning: Listing for 'yarn' produced no packages
func PrintWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(w, "%s %s\n", constants.IconWarn, warning)
	}
}

// PrintDetected prints the list of detected package managers.
//
// Parameters:
//   - w: Writer to output to
//   - managers: Detected manager names in detection order
//
// Example output:
//
//	Detected managers: npm, bun
func PrintDetected(w io.Writer, managers []string) {
	_, _ = fmt.Fprintf(w, "Detected managers: %s\n", strings.Join(managers, ", "))
}

// PrintNothingInstalled prints the message for runs that find no global
// packages under any detected manager.
//
// Parameters:
//   - w: Writer to output to
func PrintNothingInstalled(w io.Writer) {
	_, _ = fmt.Fprintln(w, "No globally installed packages found.")
}

// PrintAllUpToDate prints the message for runs where every package already
// matches its registry latest version.
//
// Parameters:
//   - w: Writer to output to
func PrintAllUpToDate(w io.Writer) {
	_, _ = fmt.Fprintln(w, "All global packages are up to date.")
}

// PrintNoSelection prints the message for an empty interactive selection.
//
// Parameters:
//   - w: Writer to output to
func PrintNoSelection(w io.Writer) {
	_, _ = fmt.Fprintln(w, "No packages selected. Nothing to do.")
}

// PrintAborted prints the message for a cancelled selection or a declined
// confirmation.
//
// Parameters:
//   - w: Writer to output to
func PrintAborted(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Aborted. No packages were upgraded.")
}

// PrintNonInteractive prints the guidance shown when stdin is not a
// terminal and no selection form can run.
//
// Parameters:
//   - w: Writer to output to
func PrintNonInteractive(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Not a terminal. Re-run with --all to upgrade without prompting.")
}

// PrintBatchSuccess prints the result line for a successful upgrade batch.
//
// Parameters:
//   - w: Writer to output to
//   - manager: Manager name the batch ran under
//   - count: Number of packages in the batch
//
// Example output:
//
//	✓ npm: upgraded 3 package(s)
func PrintBatchSuccess(w io.Writer, manager string, count int) {
	_, _ = fmt.Fprintf(w, "%s %s: upgraded %d package(s)\n", constants.IconCheckmark, manager, count)
}

// PrintBatchFailure prints the result line for a failed upgrade batch,
// followed by any matched resolution hints.
//
// Parameters:
//   - w: Writer to output to
//   - manager: Manager name the batch ran under
//   - detail: Error detail from the upgrade command
//   - hints: Resolution hints matched against the error, may be empty
//
// Example output:
//
//	✗ yarn: command failed with exit code 1: EACCES permission denied
//	  💡 Try rerunning with elevated permissions or fix the global prefix ownership
func PrintBatchFailure(w io.Writer, manager, detail string, hints []string) {
	_, _ = fmt.Fprintf(w, "%s %s: %s\n", constants.IconCross, manager, detail)
	for _, hint := range hints {
		_, _ = fmt.Fprintf(w, "  %s %s\n", constants.IconLightbulb, hint)
	}
}

// Summary holds the totals of an upgrade run.
//
// Fields:
//   - Total: Number of packages selected for upgrading
//   - Upgraded: Packages whose batch succeeded
//   - Failed: Packages whose batch failed
type Summary struct {
	// Total is the number of packages selected for upgrading.
	Total int

	// Upgraded is the number of packages whose batch succeeded.
	Upgraded int

	// Failed is the number of packages whose batch failed.
	Failed int
}

// PrintSummary prints the upgrade totals.
//
// Prints a blank line first so the totals stand apart from the per-batch
// result lines.
//
// Parameters:
//   - w: Writer to output to
//   - summary: Summary data to display
//
// Example output:
//
//	<blank line>
//	Upgraded 3 of 5 package(s), 2 failed
func PrintSummary(w io.Writer, summary Summary) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Upgraded %d of %d package(s)", summary.Upgraded, summary.Total)
	if summary.Failed > 0 {
		_, _ = fmt.Fprintf(w, ", %d failed", summary.Failed)
	}
	_, _ = fmt.Fprintln(w)
}
