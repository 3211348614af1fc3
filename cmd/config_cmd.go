package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(cfg)
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Backend:   %s\n", cfg.Storage.Backend)
	switch cfg.Storage.Backend {
	case "redis":
		fmt.Printf("    Redis URL: %s\n", cfg.Storage.RedisURL)
	case "memory":
		fmt.Println("    Data is discarded on exit")
	default:
		fmt.Printf("    Database:  %s\n", cfg.DBPath())
	}
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency:    %s\n", cfg.Display.CurrencySymbol)
	fmt.Printf("    Date format: %s\n", cfg.Display.DateFormat)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Println()

	fmt.Printf("  Environment overrides: %s, %s, %s, %s, %s\n",
		config.EnvBackend, config.EnvDBPath, config.EnvRedisURL, config.EnvLogLevel, config.EnvTheme)
	fmt.Println("  Run `fintrack setup` to reconfigure.")
	return nil
}
