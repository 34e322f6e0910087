package domain

import (
	"fmt"
	"time"
)

// FormatRunTime renders an elapsed duration as days, hours, minutes and seconds.
// Fractions of a second are truncated.
func FormatRunTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	days := total / 86400
	hours := total / 3600 % 24
	minutes := total / 60 % 60
	seconds := total % 60
	return fmt.Sprintf("%d days, %d hours, %d minutes and %d seconds", days, hours, minutes, seconds)
}
