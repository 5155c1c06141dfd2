// Package update orchestrates one full upgrade run: detecting the installed
// package managers, enumerating their globally installed packages, checking
// every package against the registry, offering an interactive selection, and
// running one batched upgrade command per manager.
//
// The run moves through fixed phases and can stop early at most of them. The
// only fatal outcome is that no supported manager is present; an empty
// package set, an all-up-to-date set, an empty selection, and a cancelled or
// declined prompt all end the run as ordinary successes. Failed upgrade
// batches do not abort the run either: the remaining managers still get
// their turn and the failures are reported at the end.
//
// Example:
//
//	runner := update.NewRunner(update.Options{All: false, Timeout: 30})
//	if err := runner.Run(ctx); err != nil {
//	    errors.PrintErrorWithHints(os.Stderr, []error{err}, verbose.IsEnabled())
//	    os.Exit(errors.GetExitCode(err))
//	}
package update

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/ajxudir/globup/pkg/display"
	"github.com/ajxudir/globup/pkg/errors"
	"github.com/ajxudir/globup/pkg/manager"
	"github.com/ajxudir/globup/pkg/prompt"
	"github.com/ajxudir/globup/pkg/registry"
	"github.com/ajxudir/globup/pkg/vercmp"
	"github.com/ajxudir/globup/pkg/verbose"
)

// Options configures a Runner.
//
// Fields:
//   - All: Upgrade every outdated package without prompting
//   - Timeout: Maximum seconds per external command and registry lookup
//     (0 for no timeout)
//   - Out: Writer for regular output; defaults to os.Stdout when nil
//   - Err: Writer for progress and warnings; defaults to os.Stderr when nil
type Options struct {
	All     bool
	Timeout int
	Out     io.Writer
	Err     io.Writer
}

// Runner drives one upgrade run through its phases.
//
// Construct it with NewRunner so the collaborator functions point at the
// real implementations; tests replace individual collaborators to simulate
// managers, registry responses, and prompt outcomes without spawning
// processes or touching the network.
type Runner struct {
	all     bool
	timeout int
	out     io.Writer
	err     io.Writer

	// Collaborator functions, replaced in tests.
	// In production, they point to the real implementations.
	detect      func(ctx context.Context, timeoutSeconds int) []manager.Definition
	list        func(ctx context.Context, def manager.Definition, timeoutSeconds int) []manager.Package
	latest      func(ctx context.Context, name string) (string, bool)
	newer       func(installed, latest string) bool
	interactive prompt.IsInteractiveFunc
	selectPkgs  prompt.SelectPackagesFunc
	confirm     prompt.ConfirmUpgradeFunc
	upgrade     func(ctx context.Context, def manager.Definition, names []string, timeoutSeconds int) error
}

// NewRunner creates a Runner wired to the real manager, registry, and
// prompt implementations.
//
// It performs the following operations:
//   - Applies the output writer defaults (os.Stdout, os.Stderr)
//   - Creates a registry client against the public npm registry
//   - Binds every collaborator function to its production implementation
//
// The prompt collaborators call through the prompt package's function
// variables at run time, so replacing those variables in tests also
// reroutes an already constructed Runner.
//
// Parameters:
//   - opts: Run configuration; zero value gives an interactive run with no
//     timeout writing to the standard streams
//
// Returns:
//   - *Runner: A runner ready for Run
func NewRunner(opts Options) *Runner {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errWriter := opts.Err
	if errWriter == nil {
		errWriter = os.Stderr
	}

	client := registry.NewClient()

	return &Runner{
		all:     opts.All,
		timeout: opts.Timeout,
		out:     out,
		err:     errWriter,

		detect: manager.Detect,
		list: func(ctx context.Context, def manager.Definition, timeoutSeconds int) []manager.Package {
			return def.ListGlobal(ctx, timeoutSeconds)
		},
		latest: client.LatestVersion,
		newer:  vercmp.IsNewer,
		interactive: func() bool {
			return prompt.IsInteractive()
		},
		selectPkgs: func(options []prompt.Option) ([]string, error) {
			return prompt.SelectPackages(options)
		},
		confirm: func(count int) (bool, error) {
			return prompt.ConfirmUpgrade(count)
		},
		upgrade: func(ctx context.Context, def manager.Definition, names []string, timeoutSeconds int) error {
			return def.Upgrade(ctx, names, timeoutSeconds)
		},
	}
}

// Run executes the upgrade run from detection through the final report.
//
// It performs the following operations:
//  1. Detects the installed package managers; none present is fatal
//  2. Enumerates the global packages of every detected manager
//  3. Checks each package against the registry and keeps the outdated ones
//  4. Resolves the selection: every candidate with --all, the interactive
//     multi-select plus confirmation otherwise
//  5. Runs one batched upgrade command per manager over the selection
//  6. Prints the per-manager outcomes and the run summary
//
// Early exits: an empty package set, an all-up-to-date set, a
// non-interactive terminal without --all, an empty selection, and a
// cancelled or declined prompt all return nil after printing why. Failed
// upgrade batches are reported but never turn the run into an error.
//
// Parameters:
//   - ctx: Controls cancellation of external commands and registry lookups
//
// Returns:
//   - error: An ExitError when no supported manager is detected, nil
//     otherwise
func (r *Runner) Run(ctx context.Context) error {
	defs, err := r.detectManagers(ctx)
	if err != nil {
		return err
	}

	packages := r.listPackages(ctx, defs)
	if len(packages) == 0 {
		display.PrintNothingInstalled(r.out)
		return nil
	}

	candidates := r.checkLatest(ctx, packages)
	sortCandidates(candidates, defs)
	if len(candidates) == 0 {
		display.PrintAllUpToDate(r.out)
		return nil
	}

	selected, proceed := r.selectCandidates(candidates)
	if !proceed {
		return nil
	}

	results := r.runBatches(ctx, defs, selected)
	r.report(results)
	return nil
}

// detectManagers probes for the supported managers and reports the result.
//
// Parameters:
//   - ctx: Controls cancellation of the probe commands
//
// Returns:
//   - []manager.Definition: The detected managers in detection order
//   - error: An ExitError carrying installation hints when none is present
func (r *Runner) detectManagers(ctx context.Context) ([]manager.Definition, error) {
	verbose.Info("Detecting package managers")

	defs := r.detect(ctx, r.timeout)
	if len(defs) == 0 {
		return nil, errors.NewExitErrorf(errors.ExitFailure,
			"no supported package manager detected (npm, yarn, pnpm, bun)\nInstall one of:\n%s",
			installHints())
	}

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, string(def.Kind))
	}
	display.PrintDetected(r.out, names)
	return defs, nil
}

// installHints renders one indented installation hint per supported
// manager, in detection order.
func installHints() string {
	var lines []string
	for _, def := range manager.All() {
		if hint := errors.GetHintForManager(string(def.Kind)); hint != "" {
			lines = append(lines, "  "+string(def.Kind)+": "+hint)
		}
	}
	return strings.Join(lines, "\n")
}

// listPackages enumerates the global packages of every detected manager.
//
// Managers are listed sequentially in detection order so the combined slice
// stays grouped by manager. A (manager, name) pair that appears twice keeps
// its first occurrence; later duplicates are skipped so every package maps
// to exactly one selection key.
//
// Parameters:
//   - ctx: Controls cancellation of the listing commands
//   - defs: The detected managers in detection order
//
// Returns:
//   - []manager.Package: All listed packages grouped by manager
func (r *Runner) listPackages(ctx context.Context, defs []manager.Definition) []manager.Package {
	seen := make(map[string]bool)
	var packages []manager.Package

	for _, def := range defs {
		for _, pkg := range r.list(ctx, def, r.timeout) {
			key := candidateKey(pkg.Manager, pkg.Name)
			if seen[key] {
				verbose.Printf("Skipping duplicate listing entry '%s'", key)
				continue
			}
			seen[key] = true
			packages = append(packages, pkg)
		}
	}
	return packages
}

// selectCandidates resolves which candidates to upgrade.
//
// It performs the following operations:
//   - With --all, prints the candidate list and selects everything
//   - Without a terminal, prints the list plus a pointer to --all and stops
//   - Otherwise runs the multi-select and the confirmation prompt
//
// A cancelled prompt, an empty selection, and a declined confirmation each
// print why the run stops and return proceed=false; nothing has been
// upgraded at that point.
//
// Parameters:
//   - candidates: The outdated packages in display order
//
// Returns:
//   - []Candidate: The selection in candidate order
//   - bool: true when the run should continue with the upgrade phase
func (r *Runner) selectCandidates(candidates []Candidate) ([]Candidate, bool) {
	if r.all {
		display.PrintCandidateList(r.out, candidateRows(candidates))
		return candidates, true
	}

	if !r.interactive() {
		display.PrintCandidateList(r.out, candidateRows(candidates))
		display.PrintNonInteractive(r.out)
		return nil, false
	}

	keys, err := r.selectPkgs(candidateOptions(candidates))
	if err != nil {
		display.PrintAborted(r.out)
		return nil, false
	}
	if len(keys) == 0 {
		display.PrintNoSelection(r.out)
		return nil, false
	}

	selected := resolveSelection(candidates, keys)

	confirmed, err := r.confirm(len(selected))
	if err != nil || !confirmed {
		display.PrintAborted(r.out)
		return nil, false
	}
	return selected, true
}
