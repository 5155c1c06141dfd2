package display

import (
	"strings"

	"github.com/ajxudir/globup/pkg/constants"
)

// SafeVersionValue returns a display-safe version string.
//
// If the value is empty or whitespace-only, returns "#N/A" so table cells
// and report lines never render blank.
//
// Parameters:
//   - val: The version string, may be empty
//
// Returns:
//   - string: The trimmed value or "#N/A" if empty
//
// Example:
//
//	display.SafeVersionValue("")      // Returns "#N/A"
//	display.SafeVersionValue("1.2.3") // Returns "1.2.3"
func SafeVersionValue(val string) string {
	val = strings.TrimSpace(val)
	if val == "" {
		return constants.PlaceholderNA
	}
	return val
}
