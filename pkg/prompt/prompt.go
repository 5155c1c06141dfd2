// Package prompt wraps the interactive forms of the upgrade flow: the
// multi-select listing upgradable packages and the confirmation gate before
// any install command runs.
//
// Every entry point is a swappable function variable so the orchestrator and
// its tests can run the full flow without a terminal. Cancellation of either
// form, including ctrl-c, surfaces as ErrCancelled rather than a raw form
// error; callers treat it as a clean abort, never a failure.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/ajxudir/globup/pkg/verbose"
)

// ErrCancelled reports that the user backed out of a form. Callers abort
// the run without treating it as a failure.
var ErrCancelled = errors.New("selection cancelled")

// minSelectHeight keeps the option window usable on very short terminals.
const minSelectHeight = 3

// Option is one selectable row of the package multi-select.
//
// Fields:
//   - Label: Rendered row text shown to the user
//   - Key: Stable identity returned for selected rows
type Option struct {
	Label string
	Key   string
}

// SelectPackagesFunc is the function type for the package multi-select.
type SelectPackagesFunc func(options []Option) ([]string, error)

// ConfirmUpgradeFunc is the function type for the upgrade confirmation.
type ConfirmUpgradeFunc func(count int) (bool, error)

// IsInteractiveFunc is the function type for the terminal check.
type IsInteractiveFunc func() bool

// Function variables that can be replaced in tests.
// In production, they point to the real implementations.
var (
	// SelectPackages runs the package multi-select.
	SelectPackages SelectPackagesFunc = selectPackagesDefault

	// ConfirmUpgrade runs the confirmation form.
	ConfirmUpgrade ConfirmUpgradeFunc = confirmUpgradeDefault

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive IsInteractiveFunc = isInteractiveDefault

	// terminalSizeFunc reads the terminal dimensions for the option window.
	terminalSizeFunc = func() (int, int, error) {
		return term.GetSize(int(os.Stdout.Fd()))
	}
)

// selectPackagesDefault shows the multi-select over the given options.
//
// It performs the following operations:
//   - Step 1: Converts options into huh options keyed by Option.Key
//   - Step 2: Sizes the option window to the terminal height
//   - Step 3: Runs the form and maps any abort to ErrCancelled
//
// Parameters:
//   - options: Selectable rows in display order
//
// Returns:
//   - []string: Keys of the selected rows, in the form's order
//   - error: ErrCancelled when the user aborts or the form cannot run
func selectPackagesDefault(options []Option) ([]string, error) {
	if len(options) == 0 {
		return nil, nil
	}

	var selected []string
	form := huh.NewMultiSelect[string]().
		Title("Select packages to upgrade").
		Options(buildOptions(options)...).
		Value(&selected)
	if height := selectHeight(len(options)); height > 0 {
		form = form.Height(height)
	}

	if err := form.Run(); err != nil {
		if !errors.Is(err, huh.ErrUserAborted) {
			verbose.Printf("Selection form failed: %v", err)
		}
		return nil, ErrCancelled
	}

	return selected, nil
}

// confirmUpgradeDefault asks the user to confirm the selected upgrade.
//
// Parameters:
//   - count: Number of packages about to be upgraded
//
// Returns:
//   - bool: true when the user confirms; false on decline
//   - error: ErrCancelled when the user aborts or the form cannot run
func confirmUpgradeDefault(count int) (bool, error) {
	var confirmed bool
	form := huh.NewConfirm().
		Title(fmt.Sprintf("Upgrade %d package(s)?", count)).
		Description("One install command runs per manager.").
		Affirmative("Upgrade").
		Negative("Cancel").
		Value(&confirmed)

	if err := form.Run(); err != nil {
		if !errors.Is(err, huh.ErrUserAborted) {
			verbose.Printf("Confirmation form failed: %v", err)
		}
		return false, ErrCancelled
	}

	return confirmed, nil
}

// isInteractiveDefault checks if stdin is connected to an interactive terminal.
func isInteractiveDefault() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// buildOptions converts prompt options into huh options.
//
// Parameters:
//   - options: Selectable rows
//
// Returns:
//   - []huh.Option[string]: huh options labelled by row text, valued by key
func buildOptions(options []Option) []huh.Option[string] {
	converted := make([]huh.Option[string], 0, len(options))
	for _, option := range options {
		converted = append(converted, huh.NewOption(option.Label, option.Key))
	}
	return converted
}

// selectHeight caps the option window to the terminal height.
//
// It performs the following operations:
//   - Step 1: Reads the terminal size; unknown sizes leave the form default
//   - Step 2: Reserves rows for the title and form chrome
//   - Step 3: Clamps between minSelectHeight and the option count
//
// Parameters:
//   - optionCount: Number of selectable rows
//
// Returns:
//   - int: Window height in rows; 0 means let the form decide
func selectHeight(optionCount int) int {
	_, rows, err := terminalSizeFunc()
	if err != nil || rows <= 0 {
		return 0
	}

	height := rows - 5
	if height < minSelectHeight {
		height = minSelectHeight
	}
	if height > optionCount {
		height = optionCount
	}
	return height
}
