package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)
	prompt := func() string {
		fmt.Print("     > ")
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to fintrack!")
	fmt.Println()

	// 1. Storage
	fmt.Println("  1. Where should transactions be stored?")
	fmt.Println("     (1) SQLite file [default]")
	fmt.Println("     (2) Bolt file")
	fmt.Println("     (3) Redis server")
	switch prompt() {
	case "2":
		cfg.Storage.Backend = "bolt"
	case "3":
		cfg.Storage.Backend = "redis"
		fmt.Printf("     Redis URL [%s]\n", cfg.Storage.RedisURL)
		if url := prompt(); url != "" {
			cfg.Storage.RedisURL = url
		}
	default:
		cfg.Storage.Backend = "sqlite"
	}
	fmt.Println()

	// 2. Currency
	fmt.Println("  2. Currency symbol")
	fmt.Printf("     Current: %s (press Enter to keep)\n", cfg.Display.CurrencySymbol)
	if sym := prompt(); sym != "" {
		cfg.Display.CurrencySymbol = sym
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	switch prompt() {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `fintrack setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
