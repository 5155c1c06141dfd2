// Package verbose provides debug logging for diagnosing manager and registry interactions.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging and allows debug messages to be printed.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Sets the enabled flag to true
//   - Releases the write lock
//
// Returns:
//   - None
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Sets the enabled flag to false
//   - Releases the write lock
//
// Returns:
//   - None
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// It performs the following operations:
//   - Acquires a read lock to ensure thread-safe access
//   - Reads the enabled flag value
//   - Releases the read lock
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Updates the writer if the provided writer is not nil
//   - Releases the write lock
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
//
// Returns:
//   - None
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// getWriter returns the current writer with proper locking for internal use.
//
// Returns:
//   - io.Writer: The currently configured output writer
func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// isEnabled returns whether verbose is enabled with proper locking for internal use.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func isEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Printf prints a formatted verbose message if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Formats and prints the message with [DEBUG] prefix to the configured writer
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
//
// Returns:
//   - None
func Printf(format string, args ...any) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational verbose message if enabled.
//
// Parameters:
//   - msg: The message string to print
//
// Returns:
//   - None
func Info(msg string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] %s\n", msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
//
// Returns:
//   - None
func Infof(format string, args ...any) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// CommandExec logs command execution details if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the command being executed
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - cmd: The command string being executed
//
// Returns:
//   - None
func CommandExec(cmd string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Executing: %s\n", cmd)
	}
}

// CommandResult logs command execution results if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the command status (succeeded or failed) with exit code
//   - Truncates long command strings to 60 characters for readability
//   - If output is provided, prints up to 5 lines with truncation
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - cmd: The command string that was executed
//   - exitCode: The exit code returned by the command (0 for success)
//   - output: The command output (stdout/stderr)
//
// Returns:
//   - None
func CommandResult(cmd string, exitCode int, output string) {
	if !isEnabled() {
		return
	}
	w := getWriter()
	if exitCode == 0 {
		_, _ = fmt.Fprintf(w, "[DEBUG] Command succeeded: %s\n", truncate(cmd, 60))
	} else {
		_, _ = fmt.Fprintf(w, "[DEBUG] Command failed (exit %d): %s\n", exitCode, truncate(cmd, 60))
	}
	if output != "" {
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) > 5 {
			for _, line := range lines[:3] {
				_, _ = fmt.Fprintf(w, "        | %s\n", truncate(line, 100))
			}
			_, _ = fmt.Fprintf(w, "        | ... (%d more lines)\n", len(lines)-3)
		} else {
			for _, line := range lines {
				_, _ = fmt.Fprintf(w, "        | %s\n", truncate(line, 100))
			}
		}
	}
}

// ManagerDetected logs the outcome of a package manager availability probe if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints whether the manager binary responded to its probe command
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - name: The package manager name (e.g., "npm")
//   - available: Whether the probe succeeded
//
// Returns:
//   - None
func ManagerDetected(name string, available bool) {
	if isEnabled() {
		if available {
			_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Manager '%s' detected\n", name)
		} else {
			_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Manager '%s' not available\n", name)
		}
	}
}

// PackagesListed logs how many globally installed packages a manager reported if enabled.
//
// Parameters:
//   - manager: The package manager name
//   - count: The number of packages parsed from its listing output
//
// Returns:
//   - None
func PackagesListed(manager string, count int) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Manager '%s' listed %d package(s)\n", manager, count)
	}
}

// RegistryLatest logs a successful registry lookup if enabled.
//
// Parameters:
//   - pkg: The package name that was looked up
//   - version: The latest version reported by the registry
//
// Returns:
//   - None
func RegistryLatest(pkg, version string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Registry latest for '%s': %s\n", pkg, version)
	}
}

// RegistryMiss logs a failed registry lookup if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the package name and the reason the lookup yielded nothing
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - pkg: The package name that was looked up
//   - reason: Why no latest version could be determined
//
// Returns:
//   - None
func RegistryMiss(pkg, reason string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Registry lookup for '%s' yielded nothing: %s\n", pkg, reason)
	}
}

// UpgradeBatch logs the composition of an upgrade batch if enabled.
//
// Parameters:
//   - manager: The package manager that will run the batch
//   - packages: The package names included in the batch command
//
// Returns:
//   - None
func UpgradeBatch(manager string, packages []string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Upgrade batch for '%s': %s\n", manager, strings.Join(packages, ", "))
	}
}

// truncate shortens a string to the specified maximum length.
//
// Parameters:
//   - s: The string to truncate
//   - maxLen: The maximum length for the returned string (must be at least 3)
//
// Returns:
//   - string: The original or truncated string with "..." suffix if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
