package manager

import (
	"encoding/json"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/globup/pkg/verbose"
)

// npmDefinition describes the npm package manager.
var npmDefinition = Definition{
	Kind:          KindNpm,
	Binary:        "npm",
	listCommand:   "npm ls -g --depth=0 --json",
	upgradePrefix: "npm install -g",
	parse:         parseNpmList,
}

// parseNpmList parses the JSON document emitted by "npm ls -g --depth=0 --json".
//
// It performs the following operations:
//   - Unmarshals the document into an ordered map so packages keep npm's own
//     emission order
//   - Iterates the "dependencies" object's keys
//   - Skips entries that carry no non-empty string "version" field (linked or
//     otherwise invalid installs)
//
// Parameters:
//   - output: Raw stdout from the npm listing command
//
// Returns:
//   - []Package: The parsed packages in npm's emission order
func parseNpmList(output []byte) []Package {
	root := orderedmap.New()
	if err := json.Unmarshal(output, root); err != nil {
		verbose.Printf("npm listing is not valid JSON: %v", err)
		return nil
	}

	rawDeps, ok := root.Get("dependencies")
	if !ok {
		return nil
	}

	var deps *orderedmap.OrderedMap
	switch v := rawDeps.(type) {
	case orderedmap.OrderedMap:
		copy := v
		deps = &copy
	case map[string]interface{}:
		converted := orderedmap.New()
		for key, val := range v {
			converted.Set(key, val)
		}
		deps = converted
	default:
		return nil
	}

	var packages []Package
	for _, name := range deps.Keys() {
		entry, ok := deps.Get(name)
		if !ok {
			continue
		}

		version, ok := npmEntryVersion(entry)
		if !ok {
			verbose.Printf("npm entry '%s' carries no version; skipped", name)
			continue
		}

		packages = append(packages, Package{Name: name, Version: version})
	}
	return packages
}

// npmEntryVersion extracts the version string from a single npm dependency
// entry.
//
// Parameters:
//   - entry: The decoded dependency object for one package
//
// Returns:
//   - string: The version field's value
//   - bool: false when the entry is not an object or its version field is
//     absent, not a string, or empty
func npmEntryVersion(entry interface{}) (string, bool) {
	var raw interface{}
	var ok bool

	switch v := entry.(type) {
	case orderedmap.OrderedMap:
		raw, ok = v.Get("version")
	case map[string]interface{}:
		raw, ok = v["version"]
	default:
		return "", false
	}
	if !ok {
		return "", false
	}

	version, ok := raw.(string)
	if !ok || strings.TrimSpace(version) == "" {
		return "", false
	}
	return version, true
}
