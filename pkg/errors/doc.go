// Package errors provides unified error types and display for globup.
//
// This package consolidates all error handling into a single location:
//   - ExitError: Command exit with specific exit code
//   - UpgradeError: A manager's batch upgrade command failed
//
// Error Display:
//
// The package provides consistent error formatting with actionable hints:
//
//	errors.PrintErrorWithHints(os.Stderr, errs, verbose)
//
// Error Checking:
//
// Use the Is* functions to check error types:
//
//	if exitErr, ok := errors.IsExitError(err); ok {
//	    os.Exit(exitErr.Code)
//	}
//
// Exit Codes:
//
// Two exit codes are defined for scripting integration:
//   - ExitSuccess (0): Run completed; covers user aborts and runs where
//     individual upgrade batches failed
//   - ExitFailure (1): No package manager available or a fatal error occurred
package errors
