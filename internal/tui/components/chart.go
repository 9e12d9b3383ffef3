package components

import (
	"strings"

	"github.com/diankaa7/splyyt/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// CategoryRow is one labeled entry of the spending breakdown.
type CategoryRow struct {
	Label string
	Value string  // formatted amount
	Frac  float64 // 0-1 share of the largest category
}

// CategoryBars renders the spending breakdown as one horizontal bar per
// category, longest first, with the amount on the right.
func CategoryBars(rows []CategoryRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	t := theme.Active

	labelW, valueW := 0, 0
	for _, r := range rows {
		if w := lipgloss.Width(r.Label); w > labelW {
			labelW = w
		}
		if w := lipgloss.Width(r.Value); w > valueW {
			valueW = w
		}
	}

	barMax := width - labelW - valueW - 4
	if barMax < 4 {
		barMax = 4
	}

	// Cycle accent colors per row.
	colors := []lipgloss.Color{t.Accent, t.Cyan, t.Yellow, t.Green, t.Orange}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	valStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for i, r := range rows {
		frac := r.Frac
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		barLen := int(frac * float64(barMax))
		if barLen < 1 && r.Frac > 0 {
			barLen = 1
		}

		barStyle := lipgloss.NewStyle().Foreground(colors[i%len(colors)])
		pad := labelW - lipgloss.Width(r.Label)

		b.WriteString(labelStyle.Render(r.Label))
		b.WriteString(strings.Repeat(" ", pad+2))
		b.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
		b.WriteString(strings.Repeat(" ", barMax-barLen+2))
		vpad := valueW - lipgloss.Width(r.Value)
		b.WriteString(strings.Repeat(" ", vpad))
		b.WriteString(valStyle.Render(r.Value))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
