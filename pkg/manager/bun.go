package manager

import (
	"strings"

	"github.com/ajxudir/globup/pkg/verbose"
)

// bunDefinition describes the bun package manager.
var bunDefinition = Definition{
	Kind:          KindBun,
	Binary:        "bun",
	listCommand:   "bun pm ls -g",
	upgradePrefix: "bun add -g",
	parse:         parseBunList,
}

// bunTreeGlyphs are the box-drawing runes bun prefixes listing rows with,
// plus the surrounding whitespace.
const bunTreeGlyphs = "├└─│ \t"

// parseBunList parses the tree-style listing emitted by "bun pm ls -g".
//
// It performs the following operations:
//   - Strips the leading box-drawing connector glyphs from each line
//   - Skips lines that still contain whitespace after stripping (the store
//     path header names its directory and package count)
//   - Splits the remaining "name@version" rows on the last "@" so scoped
//     names survive intact
//
// Parameters:
//   - output: Raw stdout from the bun listing command
//
// Returns:
//   - []Package: The parsed packages in bun's emission order
func parseBunList(output []byte) []Package {
	var packages []Package
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimLeft(line, bunTreeGlyphs)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.ContainsAny(line, " \t") {
			verbose.Printf("bun line is not a package row; skipped: %s", line)
			continue
		}

		name, version, ok := splitNameVersion(line)
		if !ok {
			verbose.Printf("bun line is not a package row; skipped: %s", line)
			continue
		}
		packages = append(packages, Package{Name: name, Version: version})
	}
	return packages
}
