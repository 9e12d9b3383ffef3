package cmd

import (
	"fmt"
	"strconv"

	"github.com/diankaa7/splyyt/internal/cli"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal [name] [amount]",
	Short: "Set the savings goal, or show the current one",
	Args:  cobra.RangeArgs(0, 2),
	RunE:  runGoal,
}

func init() {
	rootCmd.AddCommand(goalCmd)
}

func runGoal(_ *cobra.Command, args []string) error {
	tr, st, cfg, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	symbol := cfg.General.CurrencySymbol

	if len(args) == 0 {
		p := tr.Profile()
		if p.Goal == nil {
			fmt.Println("\n  Цель не задана. Поставь её: splyyt goal <name> <amount>")
			return nil
		}
		sum := tr.LedgerSummary()
		fmt.Printf("\n  Цель: %s — %s\n  Прогресс: %s\n",
			p.Goal.Name,
			cli.FormatAmount(p.Goal.Amount, symbol),
			cli.FormatPercent(sum.GoalProgress))
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: splyyt goal <name> <amount>")
	}

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("amount must be a number: %q", args[1])
	}

	unlocked, err := tr.SetGoal(args[0], amount)
	if err := reportMutation(unlocked, err); err != nil {
		return err
	}

	sum := tr.LedgerSummary()
	fmt.Printf("  Цель поставлена: %s (%s). Прогресс: %s\n",
		args[0],
		cli.FormatAmount(amount, symbol),
		cli.FormatPercent(sum.GoalProgress))
	return nil
}
