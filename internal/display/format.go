// Package display holds small formatting helpers shared by the run-loop
// log output of both tools.
package display

import (
	"fmt"
	"strings"
)

// FormatDuration renders a duration in seconds as "1m32.5s" / "45.2s".
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	m := int(seconds) / 60
	s := seconds - float64(m*60)
	return fmt.Sprintf("%dm%.1fs", m, s)
}

// FormatFPS renders a frame rate with trailing zeros trimmed
// (29.97 stays "29.97", 25.00 becomes "25").
func FormatFPS(fps float64) string {
	s := fmt.Sprintf("%.3f", fps)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// Truncate shortens s to max runes, appending "..." when cut. max values
// below 4 fall back to a hard cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max < 4 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
