// Package manager defines the supported package managers and how globally
// installed packages are probed, listed, and upgraded through each of them.
//
// Every manager is described by a Definition: the binary to probe, the
// listing command, the upgrade command prefix, and a parse function that
// turns the manager's own listing output into the uniform Package model.
// Managers always appear in the fixed order npm, yarn, pnpm, bun, and a
// package is only ever attributed to a manager that answered its probe.
package manager

import (
	"context"
	"strings"
	"sync"

	"github.com/ajxudir/globup/pkg/verbose"
)

// Kind identifies a supported package manager.
type Kind string

// Supported package manager kinds, in detection order.
const (
	KindNpm  Kind = "npm"
	KindYarn Kind = "yarn"
	KindPnpm Kind = "pnpm"
	KindBun  Kind = "bun"
)

// Package represents one globally installed package attributed to the
// manager that reported it.
//
// Fields:
//   - Manager: The package manager kind that listed this package
//   - Name: The package name, scoped names kept intact (e.g. "@angular/cli")
//   - Version: The installed version as reported by the manager
type Package struct {
	Manager Kind
	Name    string
	Version string
}

// Definition describes how a single package manager is probed, listed, and
// upgraded.
//
// Fields:
//   - Kind: The manager's identity
//   - Binary: The executable probed with "--version" to detect the manager
type Definition struct {
	Kind   Kind
	Binary string

	listCommand   string
	upgradePrefix string
	parse         func(output []byte) []Package
}

// definitions is the fixed-order table of supported managers.
var definitions = []Definition{
	npmDefinition,
	yarnDefinition,
	pnpmDefinition,
	bunDefinition,
}

// All returns the definitions of every supported manager in detection order.
//
// Returns:
//   - []Definition: A copy of the definition table (npm, yarn, pnpm, bun)
func All() []Definition {
	all := make([]Definition, len(definitions))
	copy(all, definitions)
	return all
}

// Detect probes every supported manager and returns the ones that are
// present.
//
// It performs the following operations:
//   - Probes each manager concurrently by running "<binary> --version"
//     through the shell runner
//   - Treats any probe error as "not present", never as fatal
//   - Returns the detected managers in the fixed definition order with no
//     duplicates, regardless of probe completion order
//
// Parameters:
//   - ctx: Controls cancellation of the probe commands
//   - timeoutSeconds: Maximum seconds per probe command (0 for no timeout)
//
// Returns:
//   - []Definition: The managers whose probe succeeded, in detection order
func Detect(ctx context.Context, timeoutSeconds int) []Definition {
	var wg sync.WaitGroup
	available := make([]bool, len(definitions))

	for i, def := range definitions {
		wg.Add(1)
		go func(def Definition, index int) {
			defer wg.Done()
			available[index] = def.Probe(ctx, timeoutSeconds)
		}(def, i)
	}
	wg.Wait()

	var detected []Definition
	for i, def := range definitions {
		verbose.ManagerDetected(string(def.Kind), available[i])
		if available[i] {
			detected = append(detected, def)
		}
	}
	return detected
}

// splitNameVersion splits a "name@version" string on its last "@" so scoped
// names keep their leading "@scope/" segment.
//
// Parameters:
//   - s: The combined "name@version" string
//
// Returns:
//   - string: The package name
//   - string: The version
//   - bool: false when the string has no usable separator (no "@" past the
//     first character, or nothing after it)
func splitNameVersion(s string) (string, string, bool) {
	idx := strings.LastIndex(s, "@")
	if idx <= 0 || idx == len(s)-1 {
		return "", "", false
	}
	return s[:idx], s[idx+1:], true
}
