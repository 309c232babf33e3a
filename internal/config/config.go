// Package config loads and persists bookNERD configuration.
// Settings live in a YAML file inside the data directory and can be
// overridden through BOOKNERD_* environment variables (optionally supplied
// via a .env file).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	dirName     = ".booknerd"
	fileName    = "config.yaml"
	libraryName = "library.json"
	logName     = "booknerd.log"
	auditName   = "audit.jsonl"
)

// Config holds all bookNERD configuration.
type Config struct {
	Library LibraryConfig `yaml:"library"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// LibraryConfig configures the catalog store.
type LibraryConfig struct {
	// Path is the catalog file. Empty means <data dir>/library.json.
	Path string `yaml:"path"`
}

// UIConfig configures the interactive shell.
type UIConfig struct {
	Theme string `yaml:"theme"` // light, dark, auto
}

// LoggingConfig configures logging. Logs go to a file, never to the
// terminal: the interactive shell owns stdout.
type LoggingConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Level     string `yaml:"level"`  // debug, info, warn, error
	Format    string `yaml:"format"` // json, console
	File      string `yaml:"file"`
	Audit     bool   `yaml:"audit"`
	AuditFile string `yaml:"audit_file"`
}

// DefaultConfig returns the default configuration. Empty path fields are
// resolved against the data directory during Load.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{Theme: "auto"},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Format:  "console",
			Audit:   false,
		},
	}
}

// DataDir returns the directory holding the catalog, config and logs: a
// project-local .booknerd directory when one exists, otherwise ~/.booknerd.
func DataDir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, dirName)
		if stat, err := os.Stat(local); err == nil && stat.IsDir() {
			return local, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied after parsing and empty path
// fields are resolved against the data directory.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// A .env file is optional; the process environment wins either way.
	_ = godotenv.Load()
	cfg.applyEnvOverrides()

	if err := cfg.resolvePaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file, creating the directory if
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies BOOKNERD_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BOOKNERD_LIBRARY"); v != "" {
		c.Library.Path = v
	}
	if v := os.Getenv("BOOKNERD_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("BOOKNERD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("BOOKNERD_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if os.Getenv("BOOKNERD_DEBUG") == "1" {
		c.Logging.Enabled = true
		c.Logging.Level = "debug"
	}
}

// resolvePaths fills empty path fields with their data-directory defaults.
func (c *Config) resolvePaths() error {
	dir, err := DataDir()
	if err != nil {
		return err
	}

	if c.Library.Path == "" {
		c.Library.Path = filepath.Join(dir, libraryName)
	}
	if c.Logging.File == "" {
		c.Logging.File = filepath.Join(dir, logName)
	}
	if c.Logging.AuditFile == "" {
		c.Logging.AuditFile = filepath.Join(dir, auditName)
	}
	return nil
}
