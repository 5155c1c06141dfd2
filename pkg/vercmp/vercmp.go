// Package vercmp compares installed package versions against registry versions.
//
// Comparison is purely numeric: versions are reduced to their dotted numeric
// components and compared position by position. Prerelease and build metadata
// carry no ordering weight, so "2.0.0-beta" and "2.0.0" compare equal and a
// published "2.0.0" is never offered as an upgrade over an installed beta.
package vercmp

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Severity labels classify how far apart two versions are.
// They drive display coloring only and never influence comparison.
const (
	// SeverityMajor indicates the major component changed.
	SeverityMajor = "major"

	// SeverityMinor indicates the minor component changed within the same major.
	SeverityMinor = "minor"

	// SeverityPatch indicates only the patch component (or less) changed.
	SeverityPatch = "patch"
)

// IsNewer reports whether latest is strictly newer than installed.
//
// It performs the following operations:
//   - Reduces both versions to numeric components via Compare
//   - Returns true only when latest orders strictly after installed
//
// Equal versions, including versions that differ only in prerelease tags or
// in trailing zero components ("1.2" vs "1.2.0"), are not considered newer.
//
// Parameters:
//   - installed: The currently installed version string
//   - latest: The version string reported by the registry
//
// Returns:
//   - bool: true if latest is strictly newer than installed
//
// Example:
//
//	vercmp.IsNewer("1.2.3", "1.2.4")   // true
//	vercmp.IsNewer("1.2", "1.2.0")     // false
//	vercmp.IsNewer("2.0.0-beta", "2.0.0") // false
func IsNewer(installed, latest string) bool {
	return Compare(latest, installed) > 0
}

// Compare compares two version strings by their numeric components.
//
// It performs the following operations:
//   - Strips any leading non-digit prefix from each version ("v1.2" -> "1.2")
//   - Splits the remainder on dots
//   - Reduces each component to its leading digit run ("3-beta" -> 3)
//   - Compares components position by position, treating missing ones as 0
//
// The first differing component decides the ordering. Components without a
// leading digit count as 0, so purely textual versions compare equal.
//
// Parameters:
//   - a: The first version to compare
//   - b: The second version to compare
//
// Returns:
//   - int: 1 if a > b, -1 if a < b, 0 if the numeric components are equal
func Compare(a, b string) int {
	partsA := numericParts(a)
	partsB := numericParts(b)

	length := len(partsA)
	if len(partsB) > length {
		length = len(partsB)
	}

	for i := 0; i < length; i++ {
		valA := partAt(partsA, i)
		valB := partAt(partsB, i)

		switch {
		case valA > valB:
			return 1
		case valA < valB:
			return -1
		}
	}

	return 0
}

// Severity classifies the distance between an installed and a newer version.
//
// It performs the following operations:
//   - Canonicalizes both versions to semver form
//   - Compares major, then major.minor prefixes
//   - Falls back to numeric components when either version is not semver
//
// Callers classify only rows that already have an update, so equal inputs
// degrade to SeverityPatch rather than a separate label.
//
// Parameters:
//   - installed: The currently installed version string
//   - latest: The newer version reported by the registry
//
// Returns:
//   - string: SeverityMajor, SeverityMinor, or SeverityPatch
//
// Example:
//
//	vercmp.Severity("1.2.3", "2.0.0") // "major"
//	vercmp.Severity("1.2.3", "1.3.0") // "minor"
//	vercmp.Severity("1.2.3", "1.2.4") // "patch"
func Severity(installed, latest string) string {
	ci := canonical(installed)
	cl := canonical(latest)

	if ci != "" && cl != "" {
		if semver.Major(ci) != semver.Major(cl) {
			return SeverityMajor
		}
		if semver.MajorMinor(ci) != semver.MajorMinor(cl) {
			return SeverityMinor
		}
		return SeverityPatch
	}

	// Non-semver fallback mirrors the component positions used by Compare
	partsI := numericParts(installed)
	partsL := numericParts(latest)
	if partAt(partsI, 0) != partAt(partsL, 0) {
		return SeverityMajor
	}
	if partAt(partsI, 1) != partAt(partsL, 1) {
		return SeverityMinor
	}
	return SeverityPatch
}

// numericParts reduces a version string to its numeric components.
//
// It performs the following operations:
//   - Trims whitespace and strips any leading non-digit characters
//   - Splits the remainder on dots
//   - Converts each component to the integer value of its leading digit run
//
// Parameters:
//   - version: The version string to reduce
//
// Returns:
//   - []int: Numeric components; empty when the string holds no digits
func numericParts(version string) []int {
	cleaned := strings.TrimSpace(version)

	// Strip prefixes like "v", "^", "~", or "==" down to the first digit
	start := -1
	for i, r := range cleaned {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}
	cleaned = cleaned[start:]

	segments := strings.Split(cleaned, ".")
	parts := make([]int, 0, len(segments))
	for _, segment := range segments {
		parts = append(parts, leadingDigits(segment))
	}

	return parts
}

// leadingDigits parses the leading digit run of a component into an integer.
//
// Parameters:
//   - segment: A single dotted component (e.g., "3-beta", "10", "rc1")
//
// Returns:
//   - int: Value of the leading digit run, or 0 when the component has none
func leadingDigits(segment string) int {
	end := 0
	for end < len(segment) && segment[end] >= '0' && segment[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	value, err := strconv.Atoi(segment[:end])
	if err != nil {
		return 0
	}
	return value
}

// partAt returns the component at index i, treating missing components as 0.
//
// Parameters:
//   - parts: Numeric components of a version
//   - i: Component index
//
// Returns:
//   - int: The component value, or 0 when the index is out of range
func partAt(parts []int, i int) int {
	if i >= len(parts) {
		return 0
	}
	return parts[i]
}

// canonical converts a version string to canonical semver format.
//
// It performs the following operations:
//   - Cleans and validates the input
//   - Adds "v" prefix if missing
//   - Pads missing minor/patch with zeros until valid semver is found
//   - Returns canonical form using semver.Canonical
//
// Parameters:
//   - version: The version string to canonicalize (e.g., "1.2", "v1.2.3")
//
// Returns:
//   - string: Canonical semver string (e.g., "v1.2.0"); empty string if not valid semver
func canonical(version string) string {
	cleaned := strings.TrimSpace(version)
	if cleaned == "" {
		return ""
	}

	if !strings.HasPrefix(cleaned, "v") {
		cleaned = "v" + cleaned
	}

	trimmed := strings.TrimPrefix(cleaned, "v")
	parts := strings.Split(trimmed, ".")
	for len(parts) > 0 && len(parts) < 3 {
		candidate := "v" + strings.Join(parts, ".")
		if semver.IsValid(candidate) {
			return semver.Canonical(candidate)
		}
		parts = append(parts, "0")
	}

	if semver.IsValid(cleaned) {
		return semver.Canonical(cleaned)
	}

	return ""
}
