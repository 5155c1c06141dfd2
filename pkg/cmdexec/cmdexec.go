// Package cmdexec provides command execution utilities for globup.
// Package manager commands run through the user's shell so that version
// managers (nvm, volta, asdf) and PATH tweaks from shell profiles apply.
package cmdexec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/ajxudir/globup/pkg/warnings"
)

// getShell returns the user's shell and args to run a command.
//
// This function checks the SHELL environment variable first (Unix systems),
// and falls back to platform-specific defaults if not set. Using the user's
// shell ensures that aliases and shell configurations are available during
// command execution.
//
// Returns:
//   - shell: The path to the shell executable
//   - args: The shell arguments needed to execute a command string
func getShell() (shell string, args []string) {
	// Check SHELL environment variable first (Unix)
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh, []string{"-l", "-c"}
	}

	// Platform-specific fallback
	return getDefaultShell()
}

// ExecuteFunc is the function signature for command execution.
//
// Parameters:
//   - command: Command string to execute
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//
// Returns:
//   - []byte: Stdout output from the command
//   - error: Any error that occurred during execution
type ExecuteFunc func(command string, timeoutSeconds int) ([]byte, error)

// ExecuteWithContextFunc is the function signature for context-aware command execution.
//
// This type defines the signature for functions that execute commands with
// context support, allowing cancellation of long-running operations.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - command: Command string to execute
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//
// Returns:
//   - []byte: Stdout output from the command
//   - error: Any error that occurred during execution, including context cancellation
type ExecuteWithContextFunc func(ctx context.Context, command string, timeoutSeconds int) ([]byte, error)

// Execute is the default command execution function.
//
// This variable holds the implementation used for command execution throughout
// the application. It can be replaced with a mock implementation for testing.
var Execute ExecuteFunc = executeDefault

// ExecuteWithContext is the context-aware command execution function.
//
// This variable holds the context-aware implementation used for command execution.
// It allows callers to cancel long-running operations and can be replaced with
// a mock implementation for testing.
var ExecuteWithContext ExecuteWithContextFunc = executeWithContext

// executeDefault executes a command with background context.
//
// Parameters:
//   - command: Command string to execute
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//
// Returns:
//   - []byte: Stdout output from the command
//   - error: Any error that occurred during execution
func executeDefault(command string, timeoutSeconds int) ([]byte, error) {
	return executeWithContext(context.Background(), command, timeoutSeconds)
}

// executeWithContext executes a command string with context support.
//
// The context allows callers to cancel long-running package manager
// invocations. A timeout, when given, is layered on top of the parent
// context.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - command: Command string to execute
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//
// Returns:
//   - []byte: Stdout output from the command
//   - error: Any error that occurred during execution or context cancellation
func executeWithContext(ctx context.Context, command string, timeoutSeconds int) ([]byte, error) {
	if strings.TrimSpace(command) == "" {
		return nil, fmt.Errorf("no command provided")
	}

	// Check if context is already cancelled
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if timeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSeconds)*time.Second)
		defer cancel()
	}

	return executeCommand(ctx, command, timeoutSeconds)
}

// executeCommand executes a single command string through the user's shell.
//
// This function runs the command through the user's shell (obtained via getShell),
// ensuring aliases and shell configurations are available. The command runs in its
// own process group so all child processes can be terminated on timeout, preventing
// orphaned processes.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - cmdStr: Command string to execute
//   - timeoutSeconds: Maximum execution time in seconds (used for error messages)
//
// Returns:
//   - []byte: Stdout output from the command
//   - error: Any error that occurred during execution, including timeout errors
func executeCommand(ctx context.Context, cmdStr string, timeoutSeconds int) ([]byte, error) {
	shell, shellArgs := getShell()
	args := append(shellArgs, cmdStr)

	cmd := exec.CommandContext(ctx, shell, args...)

	// Run command in its own process group so we can kill all children on timeout
	setProcGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded && timeoutSeconds > 0 {
			// Kill entire process group to ensure no orphaned child processes
			if killErr := killProcGroup(cmd); killErr != nil {
				warnings.Warnf("Warning: failed to kill process group on timeout: %v\n", killErr)
			}
			warnings.Warnf("command timed out after %d seconds\n", timeoutSeconds)
			return nil, fmt.Errorf("command timed out after %d seconds: %w", timeoutSeconds, err)
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout.String())
		}
		if errMsg != "" {
			return nil, fmt.Errorf("%w: %s", err, errMsg)
		}
		return nil, err
	}

	return stdout.Bytes(), nil
}

// ShellEscape escapes a string for safe use in shell commands.
//
// This function wraps values in single quotes and properly escapes any single quotes
// within the value. It handles special characters that could cause shell injection or
// parsing issues. Safe characters (alphanumeric, dash, underscore, etc.) are returned
// unquoted for readability.
//
// Package names flow from manager listing output into upgrade commands, so
// they are escaped even though registries constrain the name alphabet.
//
// Parameters:
//   - s: String to escape for shell usage
//
// Returns:
//   - string: Shell-safe escaped string, either quoted or unquoted if safe
func ShellEscape(s string) string {
	// If the string is empty, return empty quotes
	if s == "" {
		return "''"
	}

	// Check if the string needs escaping
	// Safe characters: alphanumeric, dash, underscore, dot, slash, at, colon, plus
	needsEscape := false
	for _, r := range s {
		if !isShellSafe(r) {
			needsEscape = true
			break
		}
	}

	if !needsEscape {
		return s
	}

	// Use single quotes for escaping (simplest and safest)
	// Single quotes preserve everything literally except single quotes themselves
	// For single quotes in the string, we close the quote, add escaped single quote, reopen
	var escaped strings.Builder
	escaped.WriteRune('\'')
	for _, r := range s {
		if r == '\'' {
			// End current quote, add escaped quote, start new quote
			escaped.WriteString("'\\''")
		} else {
			escaped.WriteRune(r)
		}
	}
	escaped.WriteRune('\'')
	return escaped.String()
}

// isShellSafe returns true if the character is safe to use unquoted in shell.
//
// Safe characters include alphanumerics and a limited set of special characters
// (dash, underscore, dot, slash, at, colon, plus, equal) that don't require quoting.
//
// Parameters:
//   - r: Rune (character) to check
//
// Returns:
//   - bool: true if the character is safe to use unquoted, false otherwise
func isShellSafe(r rune) bool {
	// Safe: alphanumeric, dash, underscore, dot, slash, at, colon, plus, equal
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_' || r == '.' ||
		r == '/' || r == '@' || r == ':' ||
		r == '+' || r == '='
}
