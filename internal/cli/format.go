// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatAmount formats a money amount with the configured currency
// symbol. Whole amounts drop the fraction: 1000 -> "1,000 ₽",
// 49.5 -> "49.50 ₽".
func FormatAmount(v float64, symbol string) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}

	// Round to cents first so a fraction near a full unit carries into
	// the whole part instead of printing as three-digit cents.
	cents := int64(math.Round(v * 100))
	whole := cents / 100
	frac := cents % 100

	s := FormatNumber(whole)
	if frac > 0 {
		s += fmt.Sprintf(".%02d", frac)
	}
	return neg + s + " " + symbol
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

// FormatPercent formats a 0-100 percentage for display, rounded to the
// nearest whole percent.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", math.Round(pct))
}

// FormatXP renders an XP value with its unit.
func FormatXP(xp int64) string {
	return FormatNumber(xp) + " XP"
}
