package tui

import (
	"strings"

	"github.com/diankaa7/splyyt/internal/cli"
	"github.com/diankaa7/splyyt/internal/tui/components"
	"github.com/diankaa7/splyyt/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	symbol := a.cfg.General.CurrencySymbol
	sum := a.tr.LedgerSummary()
	p := a.tr.Profile()
	level := a.tr.CurrentLevel()

	var b strings.Builder

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Sub string }{
		{"Доходы", cli.FormatAmount(sum.TotalIncome, symbol), entriesCount(len(p.Income))},
		{"Траты", cli.FormatAmount(sum.TotalExpense, symbol), entriesCount(len(p.Expenses))},
		{"Баланс", cli.FormatAmount(sum.Balance, symbol), ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Goal progress
	if sum.HasGoal {
		inner := components.CardInnerWidth(cw)
		barW := inner - 6
		if barW < 10 {
			barW = 10
		}
		body := components.GoalBar(sum.GoalProgress, barW) + "\n" +
			lipgloss.NewStyle().Foreground(t.TextDim).
				Render("до "+cli.FormatAmount(p.Goal.Amount, symbol))
		b.WriteString(components.ContentCard("Цель: "+p.Goal.Name, body, cw))
	} else {
		hint := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("Цель не задана — нажми g, чтобы поставить её.")
		b.WriteString(components.ContentCard("Цель", hint, cw))
	}
	b.WriteString("\n")

	// Row 3: Avatar + level strip
	levelStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	xpStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	b.WriteString(components.ContentCard("",
		p.Avatar+"  "+levelStyle.Render(level.Name)+"  "+xpStyle.Render(cli.FormatXP(p.XP)),
		cw))

	return b.String()
}

func entriesCount(n int) string {
	return cli.FormatNumber(int64(n)) + " записей"
}
