// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// MaxCustomOutput caps the display width of custom command output.
const MaxCustomOutput = 100

// FormatUptime renders a duration as days, hours and minutes, omitting
// leading zero units.
//
// Example: FormatUptime(25*time.Hour + time.Minute) returns "1d 1h 1m"
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	days := minutes / (24 * 60)
	hours := (minutes / 60) % 24
	minutes %= 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// FormatUsage renders used/total byte counts.
//
// Example: FormatUsage(1<<30, 4<<30) returns "1.0 GiB / 4.0 GiB"
func FormatUsage(used, total uint64) string {
	return fmt.Sprintf("%s / %s", humanize.IBytes(used), humanize.IBytes(total))
}

// TruncateString truncates a string to a maximum display width and adds an
// ellipsis if needed. Wide runes are never split.
//
// Example: TruncateString("Hello World", 8) returns "Hello..."
func TruncateString(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// firstLine returns the first non-empty line of command output.
func firstLine(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
