package update

import (
	"context"

	"github.com/ajxudir/globup/pkg/display"
	"github.com/ajxudir/globup/pkg/errors"
	"github.com/ajxudir/globup/pkg/manager"
	"github.com/ajxudir/globup/pkg/verbose"
)

// BatchResult records the outcome of one manager's upgrade batch.
//
// Every package in the batch shares the outcome because the manager ran
// them as a single command invocation.
//
// Fields:
//   - Manager: The manager that ran the batch
//   - Packages: The candidates included in the batch, in selection order
//   - Err: The batch error, nil when the command succeeded
type BatchResult struct {
	Manager  manager.Kind
	Packages []Candidate
	Err      error
}

// runBatches upgrades the selection with one batched command per manager.
//
// It performs the following operations:
//   - Partitions the selection by manager, preserving selection order
//     within each batch
//   - Runs the batches sequentially in manager detection order
//   - Records a failed batch and moves on to the next manager
//
// Parameters:
//   - ctx: Controls cancellation of the upgrade commands
//   - defs: The detected managers in detection order
//   - selected: The confirmed selection in candidate order
//
// Returns:
//   - []BatchResult: One result per manager that had selected packages
func (r *Runner) runBatches(ctx context.Context, defs []manager.Definition, selected []Candidate) []BatchResult {
	verbose.Printf("Upgrade order (%d packages):", len(selected))
	for i, cand := range selected {
		verbose.Printf("  %d. %s", i+1, candidateKey(cand.Package.Manager, cand.Package.Name))
	}

	var results []BatchResult
	for _, def := range defs {
		var batch []Candidate
		for _, cand := range selected {
			if cand.Package.Manager == def.Kind {
				batch = append(batch, cand)
			}
		}
		if len(batch) == 0 {
			continue
		}

		names := make([]string, 0, len(batch))
		for _, cand := range batch {
			names = append(names, cand.Package.Name)
		}

		err := r.upgrade(ctx, def, names, r.timeout)
		results = append(results, BatchResult{Manager: def.Kind, Packages: batch, Err: err})
	}
	return results
}

// report prints the per-manager outcomes and the run summary.
//
// It performs the following operations:
//   - Prints one line per batch: a success line with the package count, or
//     a failure line with the underlying cause and an actionable hint when
//     one matches
//   - Narrates every package outcome in verbose mode
//   - Prints the summary with the upgraded and failed totals
//
// Parameters:
//   - results: The batch results in execution order
func (r *Runner) report(results []BatchResult) {
	summary := display.Summary{}

	for _, res := range results {
		summary.Total += len(res.Packages)

		if res.Err == nil {
			display.PrintBatchSuccess(r.out, string(res.Manager), len(res.Packages))
		} else {
			detail := res.Err.Error()
			if ue, ok := errors.IsUpgradeError(res.Err); ok && ue.Err != nil {
				detail = ue.Err.Error()
			}
			var hints []string
			if hint := errors.GetHint(res.Err); hint != "" {
				hints = append(hints, hint)
			}
			display.PrintBatchFailure(r.out, string(res.Manager), detail, hints)
		}

		status := display.StatusUpgraded
		if res.Err != nil {
			status = display.StatusFailed
		}
		for _, cand := range res.Packages {
			verbose.Printf("Result: %s %s %s -> %s",
				display.FormatStatus(status),
				candidateKey(cand.Package.Manager, cand.Package.Name),
				cand.Package.Version,
				display.SafeVersionValue(cand.Latest))

			if display.IsSuccessStatus(status) {
				summary.Upgraded++
			}
			if display.IsFailureStatus(status) {
				summary.Failed++
			}
		}
	}

	display.PrintSummary(r.out, summary)
}
