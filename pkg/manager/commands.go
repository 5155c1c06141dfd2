package manager

import (
	"context"
	"strings"

	"github.com/ajxudir/globup/pkg/cmdexec"
	"github.com/ajxudir/globup/pkg/errors"
	"github.com/ajxudir/globup/pkg/verbose"
)

// Probe checks whether this manager's binary is present and responding.
//
// It performs the following operations:
//   - Runs "<binary> --version" through the shell runner
//   - Maps any error (binary missing, non-zero exit, timeout) to false
//
// Parameters:
//   - ctx: Controls cancellation of the probe command
//   - timeoutSeconds: Maximum seconds for the probe (0 for no timeout)
//
// Returns:
//   - bool: true when the probe command succeeded
func (d Definition) Probe(ctx context.Context, timeoutSeconds int) bool {
	probeCmd := d.Binary + " --version"
	verbose.CommandExec(probeCmd)
	_, err := cmdexec.ExecuteWithContext(ctx, probeCmd, timeoutSeconds)
	return err == nil
}

// ListGlobal lists the globally installed packages this manager reports.
//
// It performs the following operations:
//   - Runs the manager's listing command through the shell runner
//   - Parses the output with the manager's own parse function
//   - Attributes every parsed package to this manager's kind
//
// A listing command that fails entirely yields an empty slice, never an
// error: at this layer zero packages and a failed listing are the same
// outcome, and the caller decides what an empty overall set means.
//
// Parameters:
//   - ctx: Controls cancellation of the listing command
//   - timeoutSeconds: Maximum seconds for the listing (0 for no timeout)
//
// Returns:
//   - []Package: The parsed packages in the manager's own emission order
func (d Definition) ListGlobal(ctx context.Context, timeoutSeconds int) []Package {
	verbose.CommandExec(d.listCommand)
	output, err := cmdexec.ExecuteWithContext(ctx, d.listCommand, timeoutSeconds)
	if err != nil {
		verbose.Printf("Listing for '%s' failed: %v", d.Kind, err)
		return nil
	}

	packages := d.parse(output)
	for i := range packages {
		packages[i].Manager = d.Kind
	}
	verbose.PackagesListed(string(d.Kind), len(packages))
	return packages
}

// Upgrade upgrades the named packages to their latest tags in one batched
// manager invocation.
//
// It performs the following operations:
//   - Returns immediately without spawning a process when names is empty
//   - Composes the manager's upgrade command with every name suffixed
//     "@latest", each shell-escaped
//   - Runs the batch and wraps a non-zero exit in an UpgradeError carrying
//     the manager kind and the affected names
//
// Parameters:
//   - ctx: Controls cancellation of the upgrade command
//   - names: Package names to upgrade; order is preserved in the command
//   - timeoutSeconds: Maximum seconds for the batch (0 for no timeout)
//
// Returns:
//   - error: An UpgradeError when the batch fails, nil otherwise
func (d Definition) Upgrade(ctx context.Context, names []string, timeoutSeconds int) error {
	if len(names) == 0 {
		return nil
	}

	args := make([]string, 0, len(names))
	for _, name := range names {
		args = append(args, cmdexec.ShellEscape(name+"@latest"))
	}

	upgradeCmd := d.upgradePrefix + " " + strings.Join(args, " ")
	verbose.UpgradeBatch(string(d.Kind), names)
	verbose.CommandExec(upgradeCmd)

	if _, err := cmdexec.ExecuteWithContext(ctx, upgradeCmd, timeoutSeconds); err != nil {
		verbose.CommandResult(upgradeCmd, 1, err.Error())
		return errors.NewUpgradeError(string(d.Kind), names, err)
	}

	verbose.CommandResult(upgradeCmd, 0, "")
	return nil
}
