// Package cmd implements the command-line interface for globup.
// The root command runs the whole upgrade flow: detect the installed
// package managers, list their global packages, check the registry for
// newer versions, let the user pick a subset, and upgrade it.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/globup/pkg/errors"
	"github.com/ajxudir/globup/pkg/update"
	"github.com/ajxudir/globup/pkg/verbose"
)

var exitFunc = os.Exit

// CLI flags
var (
	verboseFlag         bool
	versionFlag         bool
	skipBuildChecksFlag bool
	allFlag             bool
	timeoutFlag         int
)

// Function variables that can be replaced in tests.
// In production, they point to the real implementations.
var (
	runUpgradeFunc = runUpgrade
)

var rootCmd = &cobra.Command{
	Use:   "globup",
	Short: "Interactive upgrades for globally installed packages",
	Long: `globup lists the globally installed packages of every detected package
manager (npm, yarn, pnpm, bun), checks each one against the npm registry,
and lets you pick which ones to upgrade.

Without flags the run is interactive: outdated packages appear in a
multi-select and one batched upgrade command runs per manager after a
confirmation. Use --all to upgrade everything without prompting.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
		// Show build warnings (arch mismatch, dev build) before any output
		if !skipBuildChecksFlag {
			if warnings := GetBuildWarnings(); warnings != "" {
				fmt.Fprint(os.Stderr, warnings)
				fmt.Fprintln(os.Stderr)
			}
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionFlag {
			printVersionOutput()
			return nil
		}
		return runUpgradeFunc(cmd)
	},
}

// runUpgrade builds the runner from the current flag values and executes
// the full upgrade flow.
//
// Parameters:
//   - cmd: The invoked command; supplies the context and output streams
//
// Returns:
//   - error: An ExitError when no supported manager is detected, nil
//     otherwise
func runUpgrade(cmd *cobra.Command) error {
	runner := update.NewRunner(update.Options{
		All:     allFlag,
		Timeout: timeoutFlag,
		Out:     cmd.OutOrStdout(),
		Err:     cmd.ErrOrStderr(),
	})
	return runner.Run(cmd.Context())
}

// Execute runs the root command and exits with the appropriate code:
//   - 0: Success, including every user abort and completed runs with
//     failed upgrade batches
//   - 1: No supported package manager detected, or any other fatal error
//
// Errors are printed through the hint-enhanced error display before
// exiting; cobra's own error printing is silenced so every failure goes
// through the same path.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		errors.PrintErrorWithHints(os.Stderr, []error{err}, verbose.IsEnabled())
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&skipBuildChecksFlag, "skip-build-checks", false, "Skip build validation warnings (dev build, arch mismatch)")

	rootCmd.Flags().BoolVarP(&allFlag, "all", "a", false, "Upgrade every outdated package without prompting")
	rootCmd.Flags().IntVar(&timeoutFlag, "timeout", 0, "Maximum seconds per manager command and registry lookup (0 for no limit)")

	// -v/--version is a LOCAL flag so it only works on the root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	rootCmd.AddCommand(versionCmd)
}
