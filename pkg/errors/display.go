package errors

import (
	"fmt"
	"io"
	"strings"
)

// PrintErrorWithHints prints errors with actionable hints to the writer.
//
// This is the single implementation for error display across the CLI.
// It formats errors consistently and looks up hints for each error.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - errs: Slice of errors to display
//   - verbose: If true, includes per-package details for upgrade errors
//
// Output format:
//
//	Error: <error message>
//	  💡 <actionable hint if available>
//
// Example:
//
//	errors.PrintErrorWithHints(os.Stderr, collectedErrors, verbose)
func PrintErrorWithHints(w io.Writer, errs []error, verbose bool) {
	if len(errs) == 0 {
		return
	}

	for _, err := range errs {
		printSingleError(w, err, verbose)
	}
}

// printSingleError prints a single error with appropriate formatting.
//
// Upgrade errors get their own layout so the affected manager and packages
// stand out; everything else goes through the hint-enhanced standard path.
//
// Parameters:
//   - w: Writer to output to
//   - err: The error to print
//   - verbose: If true, includes detailed information
func printSingleError(w io.Writer, err error, verbose bool) {
	if err == nil {
		return
	}

	if ue, ok := IsUpgradeError(err); ok {
		printUpgradeError(w, ue, verbose)
		return
	}

	enhanced := EnhanceErrorWithHint(err)
	_, _ = fmt.Fprintf(w, "Error: %s\n", enhanced)
}

// printUpgradeError prints a failed upgrade batch.
//
// In verbose mode, each affected package is listed on its own line so the
// user can retry them individually.
//
// Parameters:
//   - w: Writer to output to
//   - err: The upgrade error to print
//   - verbose: If true, lists the affected packages individually
func printUpgradeError(w io.Writer, err *UpgradeError, verbose bool) {
	if verbose && len(err.Packages) > 0 {
		_, _ = fmt.Fprintf(w, "Upgrade failed (%s):\n", err.Manager)
		for _, pkg := range err.Packages {
			_, _ = fmt.Fprintf(w, "  - %s\n", pkg)
		}
		if err.Err != nil {
			_, _ = fmt.Fprintf(w, "  Cause: %s\n", EnhanceErrorWithHint(err.Err))
		}
	} else {
		_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))
	}
}

// FormatErrorsWithHints formats multiple errors with hints for display.
//
// Parameters:
//   - errs: Slice of errors to format
//
// Returns:
//   - string: Formatted error messages, each prefixed with an error indicator
//
// Example output:
//
//	❌ npm: upgrade failed for typescript: exit status 1
//	❌ registry lookup failed
//	  💡 Network connectivity issue: Check internet connection and proxy settings
func FormatErrorsWithHints(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, err := range errs {
		sb.WriteString("❌ " + EnhanceErrorWithHint(err) + "\n")
	}
	return sb.String()
}
