package cmd

import (
	"fmt"

	"github.com/diankaa7/splyyt/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Balance, totals and goal progress",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	tr, st, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	// Opening the dashboard is an on-demand evaluation point: the
	// week-no-spend achievement can fire without any mutation.
	unlocked, err := tr.EvaluateAchievements()
	if err := reportMutation(unlocked, err); err != nil {
		return err
	}

	symbol := cfg.General.CurrencySymbol
	sum := tr.LedgerSummary()
	level := tr.CurrentLevel()
	p := tr.Profile()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  SPLYYT — %s", p.Avatar, level.Name)))
	fmt.Println()

	rows := [][]string{
		{"Доходы", cli.FormatAmount(sum.TotalIncome, symbol)},
		{"Траты", cli.FormatAmount(sum.TotalExpense, symbol)},
		{"Баланс", cli.FormatAmount(sum.Balance, symbol)},
	}
	if sum.HasGoal {
		rows = append(rows,
			[]string{"---"},
			[]string{"Цель: " + p.Goal.Name, cli.FormatAmount(p.Goal.Amount, symbol)},
			[]string{"Прогресс", cli.FormatPercent(sum.GoalProgress)},
		)
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"XP", cli.FormatXP(p.XP)},
		[]string{"Ачивки", cli.FormatNumber(int64(len(p.Achievements)))},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Показатель", "Значение"},
		Rows:    rows,
	}))
	return nil
}
