package tui

import (
	"strings"

	"github.com/diankaa7/splyyt/internal/config"
	"github.com/diankaa7/splyyt/internal/tui/components"
	"github.com/diankaa7/splyyt/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateSettingsKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.settingsCursor < len(theme.All)-1 {
			a.settingsCursor++
		}
	case "k", "up":
		if a.settingsCursor > 0 {
			a.settingsCursor--
		}
	case "enter":
		selected := theme.All[a.settingsCursor]
		theme.SetActive(selected.Name)
		a.cfg.Appearance.Theme = selected.Name
		if err := config.Save(a.cfg); err != nil {
			a.notice = "не удалось сохранить настройки"
			a.noticeWarn = true
		} else {
			a.notice = "Тема: " + selected.Name
			a.noticeWarn = false
		}
	}
	return a, nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(labelStyle.Render("Валюта:   ") + valueStyle.Render(a.cfg.General.CurrencySymbol))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Конфиг:   ") + valueStyle.Render(config.ConfigPath()))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Данные:   ") + valueStyle.Render(a.cfg.StorePath()))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Тема:"))
	b.WriteString("\n")
	for i, th := range theme.All {
		marker := "( )"
		if th.Name == t.Name {
			marker = "(o)"
		}
		line := marker + " " + th.Name
		if i == a.settingsCursor {
			b.WriteString(selStyle.Render("> " + line))
		} else {
			b.WriteString(valueStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("j/k — выбор, Enter — применить. Валюта меняется через `splyyt setup`."))

	return components.ContentCard("Настройки", b.String(), cw)
}
