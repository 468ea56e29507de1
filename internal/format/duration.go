package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds below a millisecond, milliseconds below a second,
// and the default string representation otherwise. Zero renders as "< 1µs".
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
