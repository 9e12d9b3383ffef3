package cmd

import (
	"fmt"

	"github.com/diankaa7/splyyt/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	RunE:  runConfig,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value (theme, currency)",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Config file:  %s\n", config.ConfigPath())
	fmt.Printf("  Data dir:     %s\n", cfg.ResolveDataDir())
	fmt.Printf("  Currency:     %s\n", cfg.General.CurrencySymbol)
	fmt.Printf("  Theme:        %s\n", cfg.Appearance.Theme)
	fmt.Println()
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "theme":
		cfg.Appearance.Theme = value
	case "currency":
		cfg.General.CurrencySymbol = value
	case "data_dir":
		cfg.General.DataDir = value
	default:
		return fmt.Errorf("unknown config key %q (theme, currency, data_dir)", key)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  %s = %s\n", key, value)
	return nil
}
