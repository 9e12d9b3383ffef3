package tui

import (
	"sort"

	"github.com/diankaa7/splyyt/internal/cli"
	"github.com/diankaa7/splyyt/internal/ledger"
	"github.com/diankaa7/splyyt/internal/tui/components"
	"github.com/diankaa7/splyyt/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderChartTab(cw int) string {
	t := theme.Active
	totals := a.tr.CategoryTotals()

	if len(totals) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("Трат пока нет — добавь первую по клавише e.")
		return components.ContentCard("Твои траты", hint, cw)
	}

	type entry struct {
		tag   string
		total float64
	}
	entries := make([]entry, 0, len(totals))
	maxTotal := 0.0
	for tag, total := range totals {
		entries = append(entries, entry{tag, total})
		if total > maxTotal {
			maxTotal = total
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].total != entries[j].total {
			return entries[i].total > entries[j].total
		}
		return entries[i].tag < entries[j].tag
	})

	symbol := a.cfg.General.CurrencySymbol
	rows := make([]components.CategoryRow, len(entries))
	for i, e := range entries {
		rows[i] = components.CategoryRow{
			Label: ledger.CategoryLabel(e.tag),
			Value: cli.FormatAmount(e.total, symbol),
			Frac:  e.total / maxTotal,
		}
	}

	return components.ContentCard("Твои траты",
		components.CategoryBars(rows, components.CardInnerWidth(cw)), cw)
}
