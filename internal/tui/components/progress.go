package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/diankaa7/splyyt/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// GoalBar renders the savings-goal progress bar with a rounded percent.
// pct is 0-100, already clamped by the ledger.
func GoalBar(pct float64, width int) string {
	t := theme.Active

	// Round the fill the same way as the label so a "100%" label never
	// sits next to a partially empty bar.
	filled := int(math.Round(pct / 100 * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barColor lipgloss.Color
	switch {
	case pct >= 80:
		barColor = t.Green
	case pct >= 40:
		barColor = t.Accent
	default:
		barColor = t.Cyan
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Bold(true)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled)) +
		" " + pctStyle.Render(fmt.Sprintf("%.0f%%", math.Round(pct)))
}

// XPBar renders progress from the current level threshold to the next
// one. When there is no next level the bar renders full.
func XPBar(xp, from, to int64, width int) string {
	if to <= from {
		return GoalBar(100, width)
	}
	pct := float64(xp-from) / float64(to-from) * 100
	return GoalBar(pct, width)
}
