package tui

import (
	"fmt"
	"strings"

	"github.com/diankaa7/splyyt/internal/model"
	"github.com/diankaa7/splyyt/internal/tui/components"
	"github.com/diankaa7/splyyt/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateShopKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.shopCursor < len(model.AvatarCatalog)-1 {
			a.shopCursor++
		}
	case "k", "up":
		if a.shopCursor > 0 {
			a.shopCursor--
		}
	case "enter":
		item := model.AvatarCatalog[a.shopCursor]
		// Simulated purchase: sets the avatar, charges nothing.
		err := a.tr.SetAvatar(item.Emoji)
		a.setMutationNotice(nil, err)
		if err == nil {
			a.notice = "Аватар обновлён: " + item.Emoji
			a.noticeWarn = false
		}
	}
	return a, nil
}

func (a App) renderShopTab(cw int) string {
	t := theme.Active
	p := a.tr.Profile()

	curStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	priceStyle := lipgloss.NewStyle().Foreground(t.Yellow)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(curStyle.Render("Текущий аватар: " + p.Avatar))
	b.WriteString("\n\n")

	for i, item := range model.AvatarCatalog {
		line := fmt.Sprintf("%s  %-16s %s",
			item.Emoji, item.Name, priceStyle.Render(fmt.Sprintf("%d ⭐", item.Stars)))
		if i == a.shopCursor {
			b.WriteString(selStyle.Render("> ") + rowStyle.Render(line))
		} else {
			b.WriteString("  " + rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Enter — надеть. Покупка за ⭐ будет доступна после подключения оплаты."))

	return components.ContentCard("Магазин", b.String(), cw)
}
