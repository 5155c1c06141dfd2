package manager

import (
	"strings"

	"github.com/ajxudir/globup/pkg/verbose"
)

// pnpmDefinition describes the pnpm package manager.
var pnpmDefinition = Definition{
	Kind:          KindPnpm,
	Binary:        "pnpm",
	listCommand:   "pnpm ls -g --depth=0",
	upgradePrefix: "pnpm add -g",
	parse:         parsePnpmList,
}

// parsePnpmList parses the plain-text listing emitted by "pnpm ls -g --depth=0".
//
// It performs the following operations:
//   - Scans line by line for "name<whitespace>version" pairs
//   - Requires the version field to start with a digit, which drops the
//     legend line, section headers like "dependencies:", and store paths
//
// Parameters:
//   - output: Raw stdout from the pnpm listing command
//
// Returns:
//   - []Package: The parsed packages in pnpm's emission order
func parsePnpmList(output []byte) []Package {
	var packages []Package
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || !startsWithDigit(fields[1]) {
			verbose.Printf("pnpm line is not a package row; skipped: %s", line)
			continue
		}

		packages = append(packages, Package{Name: fields[0], Version: fields[1]})
	}
	return packages
}

// startsWithDigit reports whether a string begins with an ASCII digit.
//
// Parameters:
//   - s: The string to check
//
// Returns:
//   - bool: true when the first byte is 0-9
func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
