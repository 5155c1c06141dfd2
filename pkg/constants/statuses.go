// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for status values.
package constants

// Status constants represent the state of a package relative to the registry.
const (
	// StatusUpToDate indicates the installed version already matches the latest published one.
	StatusUpToDate = "UpToDate"

	// StatusOutdated indicates a newer version is available on the registry.
	StatusOutdated = "Outdated"

	// StatusUnknown indicates the registry lookup yielded no latest version.
	StatusUnknown = "Unknown"
)

// Upgrade outcome constants represent the result of an upgrade attempt.
const (
	// StatusUpgraded indicates the package was successfully upgraded.
	StatusUpgraded = "Upgraded"

	// StatusFailed indicates the upgrade command failed.
	StatusFailed = "Failed"

	// StatusSkipped indicates the package was not selected for upgrading.
	StatusSkipped = "Skipped"
)

// Placeholder values for display when data is not available.
const (
	// PlaceholderNA is used when a value is not available.
	PlaceholderNA = "#N/A"
)

// Icon constants for status display.
// These provide visual indicators for package states in CLI output.
const (
	// IconSuccess indicates a successful or positive state (green circle).
	IconSuccess = "🟢"

	// IconWarning indicates a warning or caution state (orange circle).
	IconWarning = "🟠"

	// IconError indicates an error or failed state (red X).
	IconError = "❌"

	// IconInfo indicates informational or neutral state (blue circle).
	IconInfo = "🔵"

	// IconPending indicates a pending or in-progress state (yellow circle).
	IconPending = "🟡"

	// IconCheckmark indicates a passed check (checkmark).
	IconCheckmark = "✓"

	// IconCross indicates a failed check (cross).
	IconCross = "✗"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"
)
