// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a dollar amount with comma separators, rounded to
// whole dollars. e.g., 104000 -> "$104,000", -24000 -> "-$24,000"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}
	return "$" + FormatNumber(int64(math.Round(v)))
}

// FormatOptMoney formats an optional dollar amount, showing em-dash for unset.
func FormatOptMoney(v *float64) string {
	if v == nil {
		return "—"
	}
	return FormatMoney(*v)
}

// FormatPercent formats a percentage value (already scaled to 0-100).
// e.g., 61.538 -> "61.5%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatOptPercent formats an optional percentage, showing em-dash for unset.
func FormatOptPercent(pct *float64) string {
	if pct == nil {
		return "—"
	}
	return FormatPercent(*pct)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
