package display

import (
	"github.com/ajxudir/globup/pkg/constants"
)

// Status constants re-exported for convenience.
const (
	// StatusUpToDate indicates the installed version already matches the latest.
	StatusUpToDate = constants.StatusUpToDate

	// StatusOutdated indicates a newer version is available on the registry.
	StatusOutdated = constants.StatusOutdated

	// StatusUnknown indicates the registry lookup yielded no latest version.
	StatusUnknown = constants.StatusUnknown

	// StatusUpgraded indicates the package was successfully upgraded.
	StatusUpgraded = constants.StatusUpgraded

	// StatusFailed indicates the upgrade command failed.
	StatusFailed = constants.StatusFailed

	// StatusSkipped indicates the package was not selected for upgrading.
	StatusSkipped = constants.StatusSkipped
)

// StatusIcon returns the icon for a given status.
//
// Parameters:
//   - status: The status string
//
// Returns:
//   - string: The icon for this status, or empty string if unknown
//
// Example:
//
//	display.StatusIcon("Upgraded")  // Returns "🟢"
//	display.StatusIcon("Failed")    // Returns "❌"
func StatusIcon(status string) string {
	switch status {
	case constants.StatusUpgraded, constants.StatusUpToDate:
		return constants.IconSuccess
	case constants.StatusOutdated:
		return constants.IconWarning
	case constants.StatusUnknown:
		return constants.IconInfo
	case constants.StatusFailed:
		return constants.IconError
	case constants.StatusSkipped:
		return constants.IconPending
	default:
		return ""
	}
}

// FormatStatus formats a status string with the appropriate icon.
//
// Parameters:
//   - status: The status string (e.g., "Upgraded", "Failed", "Outdated")
//
// Returns:
//   - string: Formatted status with icon prefix (e.g., "🟢 Upgraded"),
//     or the status unchanged when no icon matches
//
// Example:
//
//	display.FormatStatus("Upgraded")  // Returns "🟢 Upgraded"
//	display.FormatStatus("Failed")    // Returns "❌ Failed"
//	display.FormatStatus("Outdated")  // Returns "🟠 Outdated"
func FormatStatus(status string) string {
	icon := StatusIcon(status)
	if icon == "" {
		return status
	}
	return icon + " " + status
}

// IsSuccessStatus returns true if the status indicates success.
//
// Parameters:
//   - status: The status string to check
//
// Returns:
//   - bool: true if status is Upgraded or UpToDate
func IsSuccessStatus(status string) bool {
	return status == constants.StatusUpgraded || status == constants.StatusUpToDate
}

// IsFailureStatus returns true if the status indicates failure.
//
// Parameters:
//   - status: The status string to check
//
// Returns:
//   - bool: true if status is Failed
func IsFailureStatus(status string) bool {
	return status == constants.StatusFailed
}
