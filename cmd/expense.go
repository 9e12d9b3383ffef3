package cmd

import (
	"fmt"
	"strconv"

	"github.com/diankaa7/splyyt/internal/cli"
	"github.com/diankaa7/splyyt/internal/config"
	"github.com/diankaa7/splyyt/internal/ledger"
	"github.com/diankaa7/splyyt/internal/tracker"

	"github.com/spf13/cobra"
)

var flagCategory string

var expenseCmd = &cobra.Command{
	Use:   "expense [desc] [amount]",
	Short: "Log an expense entry, or list logged expenses",
	Args:  cobra.RangeArgs(0, 2),
	RunE:  runExpense,
}

func init() {
	expenseCmd.Flags().StringVarP(&flagCategory, "category", "c", ledger.CategoryOther,
		"Expense category (entertainment, style, food, education, other)")
	rootCmd.AddCommand(expenseCmd)
}

func runExpense(_ *cobra.Command, args []string) error {
	tr, st, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	if len(args) == 0 {
		return listExpenses(tr, cfg)
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: splyyt expense <desc> <amount> [--category <tag>]")
	}

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("amount must be a number: %q", args[1])
	}

	unlocked, err := tr.RecordExpense(args[0], amount, flagCategory)
	if err := reportMutation(unlocked, err); err != nil {
		return err
	}

	sum := tr.LedgerSummary()
	fmt.Printf("  Трата записана. Баланс: %s\n",
		cli.FormatAmount(sum.Balance, cfg.General.CurrencySymbol))
	return nil
}

func listExpenses(tr *tracker.Tracker, cfg config.Config) error {
	p := tr.Profile()
	if len(p.Expenses) == 0 {
		fmt.Println("\n  Трат пока нет.")
		return nil
	}

	rows := make([][]string, 0, len(p.Expenses))
	for _, e := range p.Expenses {
		rows = append(rows, []string{
			e.Desc,
			cli.FormatAmount(e.Amount, cfg.General.CurrencySymbol),
			ledger.CategoryLabel(e.Category),
			e.Date.Format("2006-01-02"),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Траты",
		Headers: []string{"Описание", "Сумма", "Категория", "Дата"},
		Rows:    rows,
	}))
	return nil
}
