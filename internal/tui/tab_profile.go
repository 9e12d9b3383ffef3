package tui

import (
	"strings"

	"github.com/diankaa7/splyyt/internal/cli"
	"github.com/diankaa7/splyyt/internal/progression"
	"github.com/diankaa7/splyyt/internal/tui/components"
	"github.com/diankaa7/splyyt/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderProfileTab(cw int) string {
	t := theme.Active
	p := a.tr.Profile()
	level := a.tr.CurrentLevel()

	var b strings.Builder

	// Level card with XP progress toward the next tier
	levelStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	xpStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	inner := components.CardInnerWidth(cw)
	barW := inner - 6
	if barW < 10 {
		barW = 10
	}

	var levelBody strings.Builder
	levelBody.WriteString(p.Avatar + "  " + levelStyle.Render(level.Name) +
		"  " + xpStyle.Render(cli.FormatXP(p.XP)) + "\n")
	if next, ok := progression.NextLevel(p.XP); ok {
		levelBody.WriteString(components.XPBar(p.XP, level.XPThreshold, next.XPThreshold, barW))
		levelBody.WriteString("\n")
		levelBody.WriteString(dimStyle.Render("до «" + next.Name + "»: " +
			cli.FormatXP(next.XPThreshold-p.XP)))
	} else {
		levelBody.WriteString(dimStyle.Render("Максимальный уровень!"))
	}
	b.WriteString(components.ContentCard("Уровень", levelBody.String(), cw))
	b.WriteString("\n")

	// Achievements card
	nameStyle := lipgloss.NewStyle().Foreground(t.Yellow).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var achBody strings.Builder
	if len(p.Achievements) == 0 {
		achBody.WriteString(dimStyle.Render("Пока нет ачивок. Начни добавлять доходы и цели!"))
	} else {
		shown := 0
		for _, id := range p.Achievements {
			def, ok := progression.Lookup(id)
			if !ok {
				continue
			}
			if shown > 0 {
				achBody.WriteString("\n")
			}
			achBody.WriteString(nameStyle.Render("🏆 " + def.Name))
			achBody.WriteString("\n   ")
			achBody.WriteString(descStyle.Render(def.Desc))
			shown++
		}
	}
	b.WriteString(components.ContentCard("Ачивки", achBody.String(), cw))

	return b.String()
}
