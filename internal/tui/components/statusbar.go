package components

import (
	"github.com/diankaa7/splyyt/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. notice carries the
// latest unlock toast or save warning, shown on the right.
func RenderStatusBar(width int, notice string, warning bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	left := " [i]доход [e]трата [g]цель  [?]help [q]uit"
	right := ""
	if notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(t.Yellow)
		if warning {
			noticeStyle = lipgloss.NewStyle().Foreground(t.Orange)
		}
		right = noticeStyle.Render(notice) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
