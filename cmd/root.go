package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/diankaa7/splyyt/internal/cli"
	"github.com/diankaa7/splyyt/internal/config"
	"github.com/diankaa7/splyyt/internal/progression"
	"github.com/diankaa7/splyyt/internal/store"
	"github.com/diankaa7/splyyt/internal/tracker"

	"github.com/spf13/cobra"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "splyyt",
	Short: "Personal finance tracker with achievements",
	Long:  "Track income, expenses and savings goals; earn XP, levels and achievements along the way.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Profile data directory (default: XDG data dir)")
}

// openTracker is the shared load path used by all commands: config, then
// store, then the tracked profile. The caller must Close the store.
func openTracker() (*tracker.Tracker, *store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		// A corrupt config should not lock the user out of their data.
		fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	st, err := store.Open(cfg.StorePath())
	if err != nil {
		return nil, nil, cfg, err
	}

	tr, err := tracker.Load(st)
	if err != nil {
		_ = st.Close()
		return nil, nil, cfg, err
	}
	return tr, st, cfg, nil
}

// reportMutation prints unlock notifications and downgrades persistence
// failures to a warning: the in-memory change already happened, it just
// will not survive a restart.
func reportMutation(unlocked []progression.AchievementDef, err error) error {
	printUnlocks(unlocked)

	var pe *tracker.PersistError
	if errors.As(err, &pe) {
		fmt.Fprintf(os.Stderr, "  Warning: could not save profile: %v\n", pe.Err)
		fmt.Fprintln(os.Stderr, "  The change applies to this run only.")
		return nil
	}
	return err
}

func printUnlocks(unlocked []progression.AchievementDef) {
	if len(unlocked) == 0 {
		return
	}
	names := make([]string, len(unlocked))
	descs := make([]string, len(unlocked))
	for i, def := range unlocked {
		names[i] = def.Name
		descs[i] = def.Desc
	}
	fmt.Print(cli.RenderUnlocks(names, descs))
}
