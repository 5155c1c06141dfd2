package cmdexec

// getDefaultShell returns the default shell for the system.
//
// This is the fallback used when the SHELL environment variable is not set.
// A plain "sh -c" invocation skips login-profile loading but still resolves
// the manager binaries from PATH.
//
// Returns:
//   - shell: The path to the default shell executable
//   - args: The shell arguments needed to execute a command string
func getDefaultShell() (shell string, args []string) {
	return "sh", []string{"-c"}
}
