package update

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ajxudir/globup/pkg/display"
	"github.com/ajxudir/globup/pkg/manager"
	"github.com/ajxudir/globup/pkg/prompt"
	"github.com/ajxudir/globup/pkg/vercmp"
	"github.com/ajxudir/globup/pkg/verbose"
	"github.com/ajxudir/globup/pkg/warnings"
)

// Candidate pairs an installed package with the newer version the registry
// reports for it.
//
// Fields:
//   - Package: The installed package and the manager that listed it
//   - Latest: The registry's latest version, strictly newer than installed
//   - Severity: The upgrade severity ("major", "minor", or "patch")
type Candidate struct {
	Package  manager.Package
	Latest   string
	Severity string
}

// candidateKey builds the unique selection key for a (manager, name) pair.
//
// The same package name installed through two managers yields two distinct
// keys, e.g. "npm/typescript" and "bun/typescript".
func candidateKey(kind manager.Kind, name string) string {
	return string(kind) + "/" + name
}

// checkLatest resolves the latest version of every package and keeps the
// outdated ones.
//
// It performs the following operations:
//   - Routes warnings into a collector while the progress counter owns the
//     terminal line, then prints them once the counter is done
//   - Looks up all packages concurrently, bounding each lookup with the
//     runner timeout when one is configured
//   - Warns about packages the registry could not resolve and drops them
//   - Keeps the packages whose latest version is strictly newer than the
//     installed one, tagged with the upgrade severity
//
// The progress counter is suppressed when the run is not attached to a
// terminal so piped output stays clean.
//
// Parameters:
//   - ctx: Controls cancellation of the registry lookups
//   - packages: The enumerated packages grouped by manager
//
// Returns:
//   - []Candidate: The outdated packages in enumeration order
func (r *Runner) checkLatest(ctx context.Context, packages []manager.Package) []Candidate {
	collector := warnings.NewCollector()
	restore := warnings.SetWarningWriter(collector)

	progress := display.NewProgress(r.err, len(packages), "Checking packages")
	progress.SetEnabled(r.interactive())

	latests := make([]string, len(packages))
	resolved := make([]bool, len(packages))

	var wg sync.WaitGroup
	for i := range packages {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			lookupCtx := ctx
			if r.timeout > 0 {
				var cancel context.CancelFunc
				lookupCtx, cancel = context.WithTimeout(ctx, time.Duration(r.timeout)*time.Second)
				defer cancel()
			}

			version, ok := r.latest(lookupCtx, packages[i].Name)
			latests[i] = version
			resolved[i] = ok
			if !ok {
				warnings.Warnf("Warning: could not check '%s' (%s)\n",
					packages[i].Name, packages[i].Manager)
			}
			progress.Increment()
		}(i)
	}
	wg.Wait()
	progress.Done()

	restore()
	display.PrintWarnings(r.err, collector.Messages())

	var candidates []Candidate
	upToDate := 0
	for i, pkg := range packages {
		if !resolved[i] {
			continue
		}
		if !r.newer(pkg.Version, latests[i]) {
			upToDate++
			continue
		}
		candidates = append(candidates, Candidate{
			Package:  pkg,
			Latest:   latests[i],
			Severity: vercmp.Severity(pkg.Version, latests[i]),
		})
	}

	verbose.Printf("Check complete: %d outdated, %d up to date, %d unresolved",
		len(candidates), upToDate, len(packages)-upToDate-len(candidates))
	return candidates
}

// sortCandidates orders candidates by manager detection order, then by
// package name within each manager.
//
// Parameters:
//   - candidates: The candidates to sort in place
//   - defs: The detected managers; their order defines the manager ranks
func sortCandidates(candidates []Candidate, defs []manager.Definition) {
	rank := make(map[manager.Kind]int, len(defs))
	for i, def := range defs {
		rank[def.Kind] = i
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ri, rj := rank[candidates[i].Package.Manager], rank[candidates[j].Package.Manager]
		if ri != rj {
			return ri < rj
		}
		return candidates[i].Package.Name < candidates[j].Package.Name
	})
}

// candidateRows converts candidates into display rows.
func candidateRows(candidates []Candidate) []display.CandidateRow {
	rows := make([]display.CandidateRow, 0, len(candidates))
	for _, cand := range candidates {
		rows = append(rows, display.CandidateRow{
			Manager:  string(cand.Package.Manager),
			Name:     cand.Package.Name,
			Current:  cand.Package.Version,
			Latest:   cand.Latest,
			Severity: cand.Severity,
		})
	}
	return rows
}

// candidateOptions builds the multi-select options for the candidates.
//
// Labels are the aligned display rows so the form reads like the candidate
// list; keys are the candidateKey values the selection resolves back
// through.
func candidateOptions(candidates []Candidate) []prompt.Option {
	labels := display.FormatCandidateRows(candidateRows(candidates))

	options := make([]prompt.Option, 0, len(candidates))
	for i, cand := range candidates {
		options = append(options, prompt.Option{
			Label: labels[i],
			Key:   candidateKey(cand.Package.Manager, cand.Package.Name),
		})
	}
	return options
}

// resolveSelection maps selection keys back to candidates.
//
// Candidates are returned in candidate order regardless of the order the
// keys arrive in, so batches stay grouped by manager with a stable
// intra-manager order. Keys that match no candidate are ignored.
//
// Parameters:
//   - candidates: The candidates that were offered
//   - keys: The selected candidateKey values
//
// Returns:
//   - []Candidate: The selected candidates in candidate order
func resolveSelection(candidates []Candidate, keys []string) []Candidate {
	wanted := make(map[string]bool, len(keys))
	for _, key := range keys {
		wanted[key] = true
	}

	var selected []Candidate
	for _, cand := range candidates {
		if wanted[candidateKey(cand.Package.Manager, cand.Package.Name)] {
			selected = append(selected, cand)
		}
	}
	return selected
}
