package manager

import (
	"encoding/json"
	"strings"

	"github.com/ajxudir/globup/pkg/verbose"
)

// yarnDefinition describes the yarn (classic) package manager.
var yarnDefinition = Definition{
	Kind:          KindYarn,
	Binary:        "yarn",
	listCommand:   "yarn global list --json",
	upgradePrefix: "yarn global add",
	parse:         parseYarnList,
}

// yarnListRecord is one NDJSON record emitted by "yarn global list --json".
type yarnListRecord struct {
	Type string `json:"type"`
	Data struct {
		Items []string `json:"items"`
	} `json:"data"`
}

// parseYarnList parses the NDJSON stream emitted by "yarn global list --json".
//
// It performs the following operations:
//   - Attempts a JSON unmarshal per line, skipping lines that are not valid
//     records
//   - Keeps only records whose type is "list" (progress and info records are
//     part of yarn's normal output and are ignored)
//   - Splits each "name@version" item on its last "@" so scoped names
//     survive intact
//
// Parameters:
//   - output: Raw stdout from the yarn listing command
//
// Returns:
//   - []Package: The parsed packages in yarn's emission order
func parseYarnList(output []byte) []Package {
	var packages []Package
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var record yarnListRecord
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			verbose.Printf("yarn line is not a JSON record; skipped: %s", line)
			continue
		}
		if record.Type != "list" {
			continue
		}

		for _, item := range record.Data.Items {
			name, version, ok := splitNameVersion(strings.TrimSpace(item))
			if !ok {
				verbose.Printf("yarn item '%s' carries no version; skipped", item)
				continue
			}
			packages = append(packages, Package{Name: name, Version: version})
		}
	}
	return packages
}
