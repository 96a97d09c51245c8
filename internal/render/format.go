// Package render turns tracker results into terminal output. The tracker
// only hands over structured data; everything textual happens here.
package render

import (
	"fmt"
	"strings"
)

// Calendar units for humanized durations. Years and months are fixed at
// 365 and 30 days, matching how the log file has always been summarized.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerMonth  = 30 * secondsPerDay
	secondsPerYear   = 365 * secondsPerDay
)

// FormatSeconds renders a duration like "1Y-2M-3D-4h-5m-6s", omitting zero
// parts. Zero seconds renders as "0s".
func FormatSeconds(seconds int64) string {
	if seconds <= 0 {
		return "0s"
	}

	var parts []string
	add := func(value int64, unit string) {
		if value > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", value, unit))
		}
	}

	add(seconds/secondsPerYear, "Y")
	seconds %= secondsPerYear
	add(seconds/secondsPerMonth, "M")
	seconds %= secondsPerMonth
	add(seconds/secondsPerDay, "D")
	seconds %= secondsPerDay
	add(seconds/secondsPerHour, "h")
	seconds %= secondsPerHour
	add(seconds/secondsPerMinute, "m")
	seconds %= secondsPerMinute
	add(seconds, "s")

	return strings.Join(parts, "-")
}

// Bar renders a proportional bar of at most width cells. The share is
// value relative to total, so bars on one report line up against each
// other rather than against the clock.
func Bar(value, total int64, width int) string {
	if total <= 0 || value <= 0 || width <= 0 {
		return ""
	}
	n := int(value * int64(width) / total)
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}
