package cmd

import (
	"fmt"
	"sort"

	"github.com/diankaa7/splyyt/internal/cli"
	"github.com/diankaa7/splyyt/internal/ledger"

	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Spending breakdown by category",
	RunE:  runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	tr, st, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	totals := tr.CategoryTotals()
	if len(totals) == 0 {
		fmt.Println("\n  Трат пока нет — нечего показывать.")
		return nil
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

	symbol := cfg.General.CurrencySymbol
	labelW, valueW := 0, 0
	for _, e := range entries {
		if w := len([]rune(ledger.CategoryLabel(e.tag))); w > labelW {
			labelW = w
		}
		if w := len([]rune(cli.FormatAmount(e.total, symbol))); w > valueW {
			valueW = w
		}
	}

	fmt.Println()
	fmt.Println("  Твои траты")
	fmt.Println()
	for _, e := range entries {
		fmt.Println(cli.RenderHorizontalBar(
			ledger.CategoryLabel(e.tag),
			cli.FormatAmount(e.total, symbol),
			e.total/maxTotal,
			labelW, valueW, 30,
		))
	}
	fmt.Println()
	return nil
}
