package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajxudir/globup/pkg/constants"
)

// TestStatusIcon tests the behavior of StatusIcon.
//
// It verifies:
//   - Maps each known status to its icon
//   - Returns empty string for unknown statuses
func TestStatusIcon(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected string
	}{
		{name: "upgraded", status: constants.StatusUpgraded, expected: constants.IconSuccess},
		{name: "up to date", status: constants.StatusUpToDate, expected: constants.IconSuccess},
		{name: "outdated", status: constants.StatusOutdated, expected: constants.IconWarning},
		{name: "unknown", status: constants.StatusUnknown, expected: constants.IconInfo},
		{name: "failed", status: constants.StatusFailed, expected: constants.IconError},
		{name: "skipped", status: constants.StatusSkipped, expected: constants.IconPending},
		{name: "unrecognized", status: "SomethingElse", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusIcon(tt.status))
		})
	}
}

// TestFormatStatus tests the behavior of FormatStatus.
//
// It verifies:
//   - Prefixes known statuses with their icon
//   - Returns unknown statuses unchanged
func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "🟢 Upgraded", FormatStatus(constants.StatusUpgraded))
	assert.Equal(t, "❌ Failed", FormatStatus(constants.StatusFailed))
	assert.Equal(t, "🟠 Outdated", FormatStatus(constants.StatusOutdated))
	assert.Equal(t, "SomethingElse", FormatStatus("SomethingElse"))
}

// TestIsSuccessStatus tests the behavior of IsSuccessStatus.
//
// It verifies:
//   - Upgraded and UpToDate count as success
//   - Failed and Skipped do not
func TestIsSuccessStatus(t *testing.T) {
	assert.True(t, IsSuccessStatus(constants.StatusUpgraded))
	assert.True(t, IsSuccessStatus(constants.StatusUpToDate))
	assert.False(t, IsSuccessStatus(constants.StatusFailed))
	assert.False(t, IsSuccessStatus(constants.StatusSkipped))
}

// TestIsFailureStatus tests the behavior of IsFailureStatus.
//
// It verifies:
//   - Only Failed counts as failure
func TestIsFailureStatus(t *testing.T) {
	assert.True(t, IsFailureStatus(constants.StatusFailed))
	assert.False(t, IsFailureStatus(constants.StatusUpgraded))
	assert.False(t, IsFailureStatus(constants.StatusSkipped))
	assert.False(t, IsFailureStatus(constants.StatusUnknown))
}
