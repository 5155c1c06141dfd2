package manager

import (
	"context"
	"fmt"
	"testing"

	"github.com/ajxudir/globup/pkg/cmdexec"
	"github.com/ajxudir/globup/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProbe tests the behavior of Definition.Probe.
//
// It verifies:
//   - The probe runs "<binary> --version"
//   - A succeeding command reports the manager as present
//   - Any execution error reports the manager as absent
func TestProbe(t *testing.T) {
	originalFunc := cmdexec.ExecuteWithContext
	defer func() { cmdexec.ExecuteWithContext = originalFunc }()

	var gotCommand string
	cmdexec.ExecuteWithContext = func(ctx context.Context, command string, timeoutSeconds int) ([]byte, error) {
		gotCommand = command
		return []byte("1.22.19\n"), nil
	}
	assert.True(t, yarnDefinition.Probe(context.Background(), 0))
	assert.Equal(t, "yarn --version", gotCommand)

	cmdexec.ExecuteWithContext = func(ctx context.Context, command string, timeoutSeconds int) ([]byte, error) {
		return nil, fmt.Errorf("yarn: command not found")
	}
	assert.False(t, yarnDefinition.Probe(context.Background(), 0))
}

// TestListGlobal tests the behavior of Definition.ListGlobal.
//
// It verifies:
//   - The manager's listing command runs through the execution seam
//   - Parsed packages are attributed to the manager's kind
//   - The manager's emission order is preserved
func TestListGlobal(t *testing.T) {
	originalFunc := cmdexec.ExecuteWithContext
	defer func() { cmdexec.ExecuteWithContext = originalFunc }()

	var gotCommand string
	cmdexec.ExecuteWithContext = func(ctx context.Context, command string, timeoutSeconds int) ([]byte, error) {
		gotCommand = command
		return []byte(`{"dependencies":{"typescript":{"version":"5.3.3"},"eslint":{"version":"8.56.0"}}}`), nil
	}

	packages := npmDefinition.ListGlobal(context.Background(), 0)

	assert.Equal(t, "npm ls -g --depth=0 --json", gotCommand)
	require.Len(t, packages, 2)
	assert.Equal(t, Package{Manager: KindNpm, Name: "typescript", Version: "5.3.3"}, packages[0])
	assert.Equal(t, Package{Manager: KindNpm, Name: "eslint", Version: "8.56.0"}, packages[1])
}

// TestListGlobalCommandFailure tests ListGlobal when the listing command fails.
//
// It verifies:
//   - A failed listing yields an empty slice, never an error
func TestListGlobalCommandFailure(t *testing.T) {
	originalFunc := cmdexec.ExecuteWithContext
	defer func() { cmdexec.ExecuteWithContext = originalFunc }()

	cmdexec.ExecuteWithContext = func(ctx context.Context, command string, timeoutSeconds int) ([]byte, error) {
		return nil, fmt.Errorf("exit status 1: EACCES: permission denied")
	}

	assert.Empty(t, pnpmDefinition.ListGlobal(context.Background(), 0))
}

// TestUpgradeEmptyNames tests Upgrade with nothing selected.
//
// It verifies:
//   - No process is spawned and no error is returned
func TestUpgradeEmptyNames(t *testing.T) {
	originalFunc := cmdexec.ExecuteWithContext
	defer func() { cmdexec.ExecuteWithContext = originalFunc }()

	invocations := 0
	cmdexec.ExecuteWithContext = func(ctx context.Context, command string, timeoutSeconds int) ([]byte, error) {
		invocations++
		return nil, nil
	}

	assert.NoError(t, npmDefinition.Upgrade(context.Background(), nil, 0))
	assert.NoError(t, npmDefinition.Upgrade(context.Background(), []string{}, 0))
	assert.Equal(t, 0, invocations)
}

// TestUpgradeComposesBatch tests the composed upgrade command line.
//
// It verifies:
//   - Every selected name appears once, suffixed "@latest", in selection
//     order
//   - The whole batch runs as a single invocation
func TestUpgradeComposesBatch(t *testing.T) {
	originalFunc := cmdexec.ExecuteWithContext
	defer func() { cmdexec.ExecuteWithContext = originalFunc }()

	var gotCommands []string
	cmdexec.ExecuteWithContext = func(ctx context.Context, command string, timeoutSeconds int) ([]byte, error) {
		gotCommands = append(gotCommands, command)
		return []byte("done\n"), nil
	}

	names := []string{"typescript", "@angular/cli", "eslint"}
	err := npmDefinition.Upgrade(context.Background(), names, 0)

	require.NoError(t, err)
	require.Len(t, gotCommands, 1)
	assert.Equal(t, "npm install -g typescript@latest @angular/cli@latest eslint@latest", gotCommands[0])
}

// TestUpgradeEscapesUnsafeNames tests shell escaping of interpolated names.
//
// It verifies:
//   - Names with shell metacharacters are single-quoted in the command
func TestUpgradeEscapesUnsafeNames(t *testing.T) {
	originalFunc := cmdexec.ExecuteWithContext
	defer func() { cmdexec.ExecuteWithContext = originalFunc }()

	var gotCommand string
	cmdexec.ExecuteWithContext = func(ctx context.Context, command string, timeoutSeconds int) ([]byte, error) {
		gotCommand = command
		return nil, nil
	}

	err := bunDefinition.Upgrade(context.Background(), []string{"weird;name"}, 0)

	require.NoError(t, err)
	assert.Equal(t, "bun add -g 'weird;name@latest'", gotCommand)
}

// TestUpgradeFailure tests Upgrade when the batch command fails.
//
// It verifies:
//   - The error is an UpgradeError carrying the manager kind and the names
func TestUpgradeFailure(t *testing.T) {
	originalFunc := cmdexec.ExecuteWithContext
	defer func() { cmdexec.ExecuteWithContext = originalFunc }()

	cmdexec.ExecuteWithContext = func(ctx context.Context, command string, timeoutSeconds int) ([]byte, error) {
		return nil, fmt.Errorf("exit status 1: EACCES: permission denied")
	}

	err := yarnDefinition.Upgrade(context.Background(), []string{"typescript", "eslint"}, 0)

	require.Error(t, err)

	var upgradeErr *errors.UpgradeError
	require.ErrorAs(t, err, &upgradeErr)
	assert.Equal(t, "yarn", upgradeErr.Manager)
	assert.Equal(t, []string{"typescript", "eslint"}, upgradeErr.Packages)
	assert.Contains(t, err.Error(), "yarn")
	assert.Contains(t, err.Error(), "typescript")
}

// TestUpgradeTimeoutPassthrough tests timeout forwarding.
//
// It verifies:
//   - The caller's timeout reaches the execution seam unchanged
func TestUpgradeTimeoutPassthrough(t *testing.T) {
	originalFunc := cmdexec.ExecuteWithContext
	defer func() { cmdexec.ExecuteWithContext = originalFunc }()

	var gotTimeout int
	cmdexec.ExecuteWithContext = func(ctx context.Context, command string, timeoutSeconds int) ([]byte, error) {
		gotTimeout = timeoutSeconds
		return nil, nil
	}

	require.NoError(t, pnpmDefinition.Upgrade(context.Background(), []string{"nodemon"}, 45))
	assert.Equal(t, 45, gotTimeout)
}
