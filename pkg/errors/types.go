package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes for scripting integration.
// Failed upgrade batches are reported in the summary but do not change the
// exit code; only a fatal condition does.
const (
	// ExitSuccess indicates the run completed, including user aborts and
	// runs where some upgrade batches failed.
	ExitSuccess = 0

	// ExitFailure indicates a fatal condition: no package manager was
	// available, or an unrecoverable internal error occurred.
	ExitFailure = 1
)

// ExitError represents a command termination with a specific exit code.
//
// Use this error when a command needs to exit with a non-zero status
// while providing context about what went wrong.
//
// Fields:
//   - Code: Exit code (ExitSuccess or ExitFailure)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
//
// Example:
//
//	return &ExitError{
//	    Code:    ExitFailure,
//	    Message: "no supported package manager found",
//	}
type ExitError struct {
	// Code is the exit code for the command.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying error's
// message, or a default message with the exit code.
//
// Returns:
//   - string: The error message
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying error, or nil if none exists
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code (ExitSuccess or ExitFailure)
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
//
// Example:
//
//	err := errors.NewExitError(errors.ExitFailure, detectErr)
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
//
// Parameters:
//   - code: Exit code
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *ExitError: New exit error with formatted message
//
// Example:
//
//	err := errors.NewExitErrorf(errors.ExitFailure, "no manager available: %s", detail)
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess.
// If err is an ExitError, returns its code.
// Otherwise returns ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
//
// Example:
//
//	code := errors.GetExitCode(err)
//	os.Exit(code)
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// IsExitError checks if err is an ExitError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ExitError: The ExitError if err is one, nil otherwise
//   - bool: true if err is an ExitError
//
// Example:
//
//	if exitErr, ok := errors.IsExitError(err); ok {
//	    os.Exit(exitErr.Code)
//	}
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// UpgradeError indicates that one manager's batch upgrade command failed.
//
// Every package in the batch shares the same outcome because the packages
// were handed to the manager as a single command invocation.
//
// Fields:
//   - Manager: Name of the package manager that ran the batch
//   - Packages: Names of the packages included in the failed command
//   - Err: The command execution error
//
// Example:
//
//	return &UpgradeError{
//	    Manager:  "npm",
//	    Packages: []string{"typescript", "eslint"},
//	    Err:      execErr,
//	}
type UpgradeError struct {
	// Manager is the package manager whose upgrade command failed.
	Manager string

	// Packages lists the packages that were part of the failed batch.
	Packages []string

	// Err is the underlying command execution error.
	Err error
}

// Error implements the error interface.
//
// Returns:
//   - string: Formatted message naming the manager and affected packages
func (e *UpgradeError) Error() string {
	msg := fmt.Sprintf("%s: upgrade failed for %s", e.Manager, strings.Join(e.Packages, ", "))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying command error, or nil if none exists
func (e *UpgradeError) Unwrap() error {
	return e.Err
}

// NewUpgradeError creates an UpgradeError for a failed batch.
//
// Parameters:
//   - manager: Name of the package manager
//   - packages: Packages included in the failed command
//   - err: The command execution error
//
// Returns:
//   - *UpgradeError: New upgrade error
func NewUpgradeError(manager string, packages []string, err error) *UpgradeError {
	return &UpgradeError{Manager: manager, Packages: packages, Err: err}
}

// IsUpgradeError checks if err is an UpgradeError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *UpgradeError: The UpgradeError if err is one, nil otherwise
//   - bool: true if err is an UpgradeError
func IsUpgradeError(err error) (*UpgradeError, bool) {
	var ue *UpgradeError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
