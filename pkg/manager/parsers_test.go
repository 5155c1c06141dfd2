package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseNpmList tests the behavior of parseNpmList.
//
// It verifies:
//   - Packages come back in npm's own emission order
//   - Scoped names are kept intact
//   - Entries without a version field are skipped
func TestParseNpmList(t *testing.T) {
	output := []byte(`{
  "name": "lib",
  "dependencies": {
    "corepack": {"version": "0.24.1"},
    "npm": {"version": "10.5.0"},
    "@angular/cli": {"version": "17.1.0"},
    "linked-tool": {"resolved": "file:../linked-tool"}
  }
}`)

	packages := parseNpmList(output)

	require.Len(t, packages, 3)
	assert.Equal(t, Package{Name: "corepack", Version: "0.24.1"}, packages[0])
	assert.Equal(t, Package{Name: "npm", Version: "10.5.0"}, packages[1])
	assert.Equal(t, Package{Name: "@angular/cli", Version: "17.1.0"}, packages[2])
}

// TestParseNpmListDegenerate tests parseNpmList on unusable input.
//
// It verifies:
//   - Invalid JSON yields no packages
//   - A document without a dependencies object yields no packages
//   - Entries with empty or non-string versions are skipped
func TestParseNpmListDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"invalid json", `not json`},
		{"empty output", ``},
		{"no dependencies", `{"name": "lib"}`},
		{"dependencies not an object", `{"dependencies": []}`},
		{"empty version", `{"dependencies": {"pkg": {"version": ""}}}`},
		{"numeric version", `{"dependencies": {"pkg": {"version": 5}}}`},
		{"entry not an object", `{"dependencies": {"pkg": "1.0.0"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, parseNpmList([]byte(tt.output)))
		})
	}
}

// TestParseYarnList tests the behavior of parseYarnList.
//
// It verifies:
//   - Only records of type "list" contribute packages
//   - Items split on the last "@" so scoped names survive
//   - Unparsable lines and items without versions are skipped
func TestParseYarnList(t *testing.T) {
	output := []byte(`{"type":"activityStart","data":{"id":0}}
{"type":"info","data":"\"create-react-app@5.0.1\" has binaries:"}
{"type":"list","data":{"type":"bins","items":["create-react-app@5.0.1","@vue/cli@5.0.8"]}}
garbage line that is not json
{"type":"list","data":{"items":["name-without-version"]}}
{"type":"activityEnd","data":{"id":0}}`)

	packages := parseYarnList(output)

	require.Len(t, packages, 2)
	assert.Equal(t, Package{Name: "create-react-app", Version: "5.0.1"}, packages[0])
	assert.Equal(t, Package{Name: "@vue/cli", Version: "5.0.8"}, packages[1])
}

// TestParseYarnListEmpty tests parseYarnList on streams without list records.
//
// It verifies:
//   - Info-only streams and empty output yield no packages
func TestParseYarnListEmpty(t *testing.T) {
	assert.Empty(t, parseYarnList([]byte("")))
	assert.Empty(t, parseYarnList([]byte(`{"type":"info","data":"yarn global v1.22.19"}`)))
}

// TestParsePnpmList tests the behavior of parsePnpmList.
//
// It verifies:
//   - Name/version rows parse while the legend, store path, and section
//     header are skipped
//   - Scoped names are kept intact
//   - The version field must start with a digit
func TestParsePnpmList(t *testing.T) {
	output := []byte(`Legend: production dependency, optional only, dev only

/home/user/.local/share/pnpm/global/5

dependencies:
typescript 5.3.3
nodemon 3.0.2
@nestjs/cli 10.3.0
`)

	packages := parsePnpmList(output)

	require.Len(t, packages, 3)
	assert.Equal(t, Package{Name: "typescript", Version: "5.3.3"}, packages[0])
	assert.Equal(t, Package{Name: "nodemon", Version: "3.0.2"}, packages[1])
	assert.Equal(t, Package{Name: "@nestjs/cli", Version: "10.3.0"}, packages[2])
}

// TestParsePnpmListDegenerate tests parsePnpmList on unusable input.
//
// It verifies:
//   - Empty output and header-only output yield no packages
//   - Rows whose second field does not start with a digit are skipped
func TestParsePnpmListDegenerate(t *testing.T) {
	assert.Empty(t, parsePnpmList([]byte("")))
	assert.Empty(t, parsePnpmList([]byte("dependencies:\n")))
	assert.Empty(t, parsePnpmList([]byte("tool link:/home/user/dev/tool\n")))
}

// TestParseBunList tests the behavior of parseBunList.
//
// It verifies:
//   - Tree connector glyphs are stripped from listing rows
//   - The store path header is skipped
//   - Scoped names split on the last "@"
func TestParseBunList(t *testing.T) {
	output := []byte(`/home/user/.bun/install/global node_modules (3)
├── @angular/cli@17.1.0
├── eslint@8.56.0
└── typescript@5.3.3
`)

	packages := parseBunList(output)

	require.Len(t, packages, 3)
	assert.Equal(t, Package{Name: "@angular/cli", Version: "17.1.0"}, packages[0])
	assert.Equal(t, Package{Name: "eslint", Version: "8.56.0"}, packages[1])
	assert.Equal(t, Package{Name: "typescript", Version: "5.3.3"}, packages[2])
}

// TestParseBunListDegenerate tests parseBunList on unusable input.
//
// It verifies:
//   - Empty output yields no packages
//   - Rows without a version separator are skipped
func TestParseBunListDegenerate(t *testing.T) {
	assert.Empty(t, parseBunList([]byte("")))
	assert.Empty(t, parseBunList([]byte("├── plain-name\n")))
	assert.Empty(t, parseBunList([]byte("/home/user/.bun/install/global node_modules (0)\n")))
}

// TestSplitNameVersion tests the behavior of splitNameVersion.
//
// It verifies:
//   - Plain and scoped names split on the last "@"
//   - Strings without a usable separator are rejected
func TestSplitNameVersion(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantName    string
		wantVersion string
		wantOK      bool
	}{
		{"plain name", "typescript@5.3.3", "typescript", "5.3.3", true},
		{"scoped name", "@angular/cli@17.1.0", "@angular/cli", "17.1.0", true},
		{"prerelease version", "eslint@9.0.0-rc.1", "eslint", "9.0.0-rc.1", true},
		{"no separator", "typescript", "", "", false},
		{"scoped without version", "@angular/cli", "", "", false},
		{"trailing separator", "typescript@", "", "", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, version, ok := splitNameVersion(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantVersion, version)
		})
	}
}
