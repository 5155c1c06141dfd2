// Package display renders globup's terminal output: the aligned,
// severity-colored candidate rows offered for selection, the in-place
// progress line used while packages are checked against the registry, and
// the warning, abort, and summary messages around the upgrade flow.
//
// Candidate Rows:
//
// FormatCandidateRows lays out "name current → latest" rows with
// runewidth-aware padding so columns line up even with wide characters in
// package names, and colors the latest version by upgrade severity:
//
//	rows := display.FormatCandidateRows(candidates)
//	// typescript  5.3.3 → 5.4.2  [npm]
//
// Progress:
//
// Progress is a thread-safe in-place counter for the checking phase:
//
//	progress := display.NewProgress(os.Stderr, len(packages), "Checking packages")
//	progress.Increment() // safe from concurrent goroutines
//	progress.Done()
//
// Messages:
//
// The Print* helpers write the fixed messages for each way a run can end
// short of upgrading (nothing installed, everything current, empty
// selection, declined confirm) plus the per-batch lines and totals of the
// final report.
package display
