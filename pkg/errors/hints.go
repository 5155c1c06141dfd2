package errors

import (
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	// Pattern is a substring to match in error messages (case-insensitive).
	Pattern string

	// Hint is a brief description of the problem.
	Hint string

	// Resolution is a command or action to fix the problem.
	Resolution string
}

// ManagerInstallHints maps package manager names to installation instructions.
// Used when detection finds no usable manager on the system.
var ManagerInstallHints = map[string]string{
	"npm":  "Install Node.js: https://nodejs.org/",
	"yarn": "Install Yarn: https://yarnpkg.com/getting-started/install",
	"pnpm": "Install pnpm: https://pnpm.io/installation",
	"bun":  "Install Bun: https://bun.sh/docs/installation",
}

// CommonErrorHints maps error patterns to actionable hints.
// These are used by EnhanceErrorWithHint to add context to errors.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "context deadline exceeded",
		Hint:       "Command took too long",
		Resolution: "Raise or drop the --timeout flag and try again",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Check ownership of the global package directory or rerun with appropriate privileges",
	},
	{
		Pattern:    "network",
		Hint:       "Network connectivity issue",
		Resolution: "Check internet connection and proxy settings",
	},
	{
		Pattern:    "ENOTFOUND",
		Hint:       "DNS resolution failed",
		Resolution: "Check network connectivity and DNS configuration",
	},
	{
		Pattern:    "ECONNREFUSED",
		Hint:       "Connection refused by server",
		Resolution: "Check if the registry is accessible and not blocked",
	},
	{
		Pattern:    "EACCES",
		Hint:       "Global install directory is not writable",
		Resolution: "Fix directory ownership or configure a user-writable prefix",
	},
	{
		Pattern:    "401",
		Hint:       "Authentication required",
		Resolution: "Configure authentication for the package registry",
	},
	{
		Pattern:    "403",
		Hint:       "Access forbidden",
		Resolution: "Check permissions and authentication credentials for the registry",
	},
	{
		Pattern:    "404",
		Hint:       "Package or version not found",
		Resolution: "Verify the package name and version exist in the registry",
	},
}

// GetHint returns an actionable hint for the given error.
//
// It searches the error message for known patterns in CommonErrorHints
// and returns a formatted hint if one matches.
//
// Parameters:
//   - err: The error to get a hint for
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
//
// Example:
//
//	hint := errors.GetHint(err)
//	if hint != "" {
//	    fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
//	}
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// GetHintForManager returns the installation hint for a package manager.
//
// Parameters:
//   - name: The manager name (e.g., "npm", "bun")
//
// Returns:
//   - string: Installation hint, or empty string if unknown manager
func GetHintForManager(name string) string {
	return ManagerInstallHints[name]
}

// RegisterHint adds a custom hint to the registry.
//
// This allows extending the hint system with additional patterns.
//
// Parameters:
//   - pattern: Lowercase substring to match in error messages
//   - hint: Brief description of the issue
//   - resolution: Actionable suggestion for fixing the error
func RegisterHint(pattern, hint, resolution string) {
	CommonErrorHints = append(CommonErrorHints, ErrorHint{
		Pattern:    pattern,
		Hint:       hint,
		Resolution: resolution,
	})
}

// EnhanceErrorWithHint adds actionable hints to an error message if a matching pattern is found.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: Error message with hint appended if found, otherwise just the error message
//
// Example:
//
//	enhanced := errors.EnhanceErrorWithHint(err)
//	fmt.Fprintf(os.Stderr, "Error: %s\n", enhanced)
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()
	for _, hint := range CommonErrorHints {
		if strings.Contains(strings.ToLower(errStr), strings.ToLower(hint.Pattern)) {
			return errStr + "\n  \U0001F4A1 " + hint.Hint + ": " + hint.Resolution
		}
	}

	return errStr
}
