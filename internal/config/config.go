// Package config loads fintrack settings from TOML, .env and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/theirongolddev/fintrack/internal/log"
)

// Environment variables that override the config file.
const (
	EnvBackend  = "FINTRACK_BACKEND"
	EnvDBPath   = "FINTRACK_DB_PATH"
	EnvRedisURL = "FINTRACK_REDIS_URL"
	EnvLogLevel = "FINTRACK_LOG_LEVEL"
	EnvTheme    = "FINTRACK_THEME"
)

// Config holds all fintrack configuration.
type Config struct {
	Storage    StorageConfig    `toml:"storage"`
	Display    DisplayConfig    `toml:"display"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	Backend  string `toml:"backend"`
	Path     string `toml:"path,omitempty"`
	RedisURL string `toml:"redis_url,omitempty"`
}

// DisplayConfig holds presentation preferences.
type DisplayConfig struct {
	CurrencySymbol string `toml:"currency_symbol"`
	DateFormat     string `toml:"date_format"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json,omitempty"`
}

var backends = map[string]bool{"sqlite": true, "bolt": true, "redis": true, "memory": true}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend:  "sqlite",
			RedisURL: "redis://localhost:6379/0",
		},
		Display: DisplayConfig{
			CurrencySymbol: "₹",
			DateFormat:     "Jan 2, 2006",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fintrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fintrack")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG data directory holding database files.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "fintrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "fintrack")
}

// Load reads the config file, returning defaults if it doesn't exist, then
// applies .env and environment overrides.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	_ = godotenv.Load()
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Storage.Backend = getEnv(EnvBackend, c.Storage.Backend)
	c.Storage.Path = getEnv(EnvDBPath, c.Storage.Path)
	c.Storage.RedisURL = getEnv(EnvRedisURL, c.Storage.RedisURL)
	c.Log.Level = getEnv(EnvLogLevel, c.Log.Level)
	c.Appearance.Theme = getEnv(EnvTheme, c.Appearance.Theme)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	b := strings.ToLower(c.Storage.Backend)
	if !backends[b] {
		return fmt.Errorf("storage.backend %q: want sqlite, bolt, redis or memory", c.Storage.Backend)
	}
	if b == "redis" && c.Storage.RedisURL == "" {
		return fmt.Errorf("storage.redis_url is required for the redis backend")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// DBPath returns the database file for file-based backends, defaulting to
// the data directory.
func (c Config) DBPath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	if strings.EqualFold(c.Storage.Backend, "bolt") {
		return filepath.Join(DataDir(), "fintrack.bolt")
	}
	return filepath.Join(DataDir(), "fintrack.db")
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
