// Package cmd implements the fintrack CLI commands.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/app"
	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/log"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/store"
)

var (
	flagMonth   string
	flagBackend string
	flagDBPath  string
	flagQuiet   bool
	flagVerbose bool
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:          "fintrack",
	Short:        "Personal finance tracker",
	Long:         "Record income and expenses, see monthly totals, category breakdowns and budget status.",
	RunE:         runSummary,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Month to show (YYYY-MM, default current)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: sqlite, bolt, redis or memory")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Database file for sqlite/bolt backends")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print JSON instead of tables")
}

// env is everything a command needs once the store is open.
type env struct {
	cfg     config.Config
	log     *log.Logger
	adapter *store.Adapter
	session *app.Session
}

func (e *env) Close() {
	if err := e.adapter.Close(); err != nil {
		e.log.Warn("closing store", log.FieldError, err)
	}
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagVerbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openEnv is the shared startup path used by all data commands: config,
// logger, store, then the session positioned on --month.
func openEnv(ctx context.Context, logOut io.Writer) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level, _ := log.ParseLevel(cfg.Log.Level) // checked by Validate
	logger := log.New(log.Config{Level: level, Output: logOut, JSON: cfg.Log.JSON})

	opts := store.Options{
		Backend:  cfg.Storage.Backend,
		Path:     cfg.DBPath(),
		RedisURL: cfg.Storage.RedisURL,
	}
	kv, err := store.Open(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", opts.Backend, err)
	}
	logger.WithComponent(log.ComponentStorage).Op(ctx, "open",
		log.FieldBackend, opts.Backend,
		log.FieldPath, opts.Path,
	)

	adapter := store.NewAdapter(kv)
	sess, err := app.Open(ctx, adapter, app.Options{Logger: logger})
	if err != nil {
		_ = adapter.Close()
		return nil, err
	}
	if sess.Seeded() && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Created %d default categories\n", len(sess.Categories()))
	}

	if flagMonth != "" {
		m, err := model.ParseMonth(flagMonth)
		if err != nil {
			_ = adapter.Close()
			return nil, fmt.Errorf("--month: %w", err)
		}
		sess.SetViewedMonth(m)
	}

	return &env{cfg: cfg, log: logger, adapter: adapter, session: sess}, nil
}

func (e *env) money(v float64) string {
	return cli.FormatMoney(v, e.cfg.Display.CurrencySymbol)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
