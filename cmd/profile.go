package cmd

import (
	"fmt"

	"github.com/diankaa7/splyyt/internal/cli"
	"github.com/diankaa7/splyyt/internal/progression"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Level, XP and unlocked achievements",
	RunE:  runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
	tr, st, _, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	// Viewing the profile is an on-demand evaluation point: week-no-spend
	// can fire here without any mutation.
	unlocked, err := tr.EvaluateAchievements()
	if err := reportMutation(unlocked, err); err != nil {
		return err
	}

	p := tr.Profile()
	level := tr.CurrentLevel()

	fmt.Println()
	fmt.Printf("  %s  Уровень: %s\n", p.Avatar, level.Name)
	fmt.Printf("      %s", cli.FormatXP(p.XP))
	if next, ok := progression.NextLevel(p.XP); ok {
		fmt.Printf("  (до «%s»: %s)", next.Name, cli.FormatXP(next.XPThreshold-p.XP))
	}
	fmt.Println()
	fmt.Println()

	if len(p.Achievements) == 0 {
		fmt.Println("  Пока нет ачивок. Начни добавлять доходы и цели!")
		return nil
	}

	rows := make([][]string, 0, len(p.Achievements))
	for _, id := range p.Achievements {
		def, ok := progression.Lookup(id)
		if !ok {
			// Stored by another build of the catalog; skip silently.
			continue
		}
		rows = append(rows, []string{def.Name, def.Desc})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Ачивки",
		Headers: []string{"Название", "Описание"},
		Rows:    rows,
	}))
	return nil
}
