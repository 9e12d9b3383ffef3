package cmd

import (
	"fmt"
	"strconv"

	"github.com/diankaa7/splyyt/internal/cli"
	"github.com/diankaa7/splyyt/internal/config"
	"github.com/diankaa7/splyyt/internal/tracker"

	"github.com/spf13/cobra"
)

var incomeCmd = &cobra.Command{
	Use:   "income [source] [amount]",
	Short: "Log an income entry, or list logged income",
	Args:  cobra.RangeArgs(0, 2),
	RunE:  runIncome,
}

func init() {
	rootCmd.AddCommand(incomeCmd)
}

func runIncome(_ *cobra.Command, args []string) error {
	tr, st, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	if len(args) == 0 {
		return listIncome(tr, cfg)
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: splyyt income <source> <amount>")
	}

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("amount must be a number: %q", args[1])
	}

	unlocked, err := tr.RecordIncome(args[0], amount)
	if err := reportMutation(unlocked, err); err != nil {
		return err
	}

	sum := tr.LedgerSummary()
	fmt.Printf("  Доход записан. Баланс: %s\n",
		cli.FormatAmount(sum.Balance, cfg.General.CurrencySymbol))
	return nil
}

func listIncome(tr *tracker.Tracker, cfg config.Config) error {
	p := tr.Profile()
	if len(p.Income) == 0 {
		fmt.Println("\n  Доходов пока нет. Добавь первый: splyyt income <source> <amount>")
		return nil
	}

	rows := make([][]string, 0, len(p.Income))
	for _, e := range p.Income {
		rows = append(rows, []string{
			e.Source,
			cli.FormatAmount(e.Amount, cfg.General.CurrencySymbol),
			e.Date.Format("2006-01-02"),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Доходы",
		Headers: []string{"Источник", "Сумма", "Дата"},
		Rows:    rows,
	}))
	return nil
}
