// Package config loads todoboard's YAML configuration
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Persistence backends
const (
	BackendLocal    = "local"
	BackendREST     = "rest"
	BackendRealtime = "realtime"
)

const (
	DefaultBoard        = "default"
	DefaultPollInterval = 2 * time.Second
	DefaultTimeout      = 10 * time.Second
	DefaultLogLevel     = "info"
)

// Environment overrides
const (
	EnvBackend   = "TODOBOARD_BACKEND"
	EnvAPIURL    = "TODOBOARD_API_URL"
	EnvDBPath    = "TODOBOARD_DB_PATH"
	EnvSocket    = "TODOBOARD_SOCKET"
	EnvBoard     = "TODOBOARD_BOARD"
	EnvLogLevel  = "TODOBOARD_LOG_LEVEL"
	EnvThemeFile = "TODOBOARD_THEME_FILE"
)

var (
	ErrUnknownBackend = errors.New("unknown backend")
	ErrMissingAPIURL  = errors.New("rest backend requires api_url")
)

// Config represents the application configuration
type Config struct {
	// Backend selects the persistence binding: local, rest or realtime
	Backend string `yaml:"backend"`

	// DBPath is the SQLite file used by the local and realtime backends
	DBPath string `yaml:"db_path"`

	// APIURL is the base URL of the REST backend
	APIURL string `yaml:"api_url"`

	// Timeout bounds each REST request
	Timeout time.Duration `yaml:"timeout"`

	// SocketPath is the board daemon's Unix socket (realtime backend)
	SocketPath string `yaml:"socket_path"`

	// Board scopes change notifications when several boards share a daemon
	Board string `yaml:"board"`

	// PollInterval is used when the backend cannot push changes
	PollInterval time.Duration `yaml:"poll_interval"`

	LogLevel string `yaml:"log_level"`

	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// DataDir returns ~/.todoboard, where the database, socket and logs live
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".todoboard"), nil
}

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from TODOBOARD_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// applyEnv overrides file values with TODOBOARD_* environment variables
func applyEnv(config *Config) {
	overrides := []struct {
		key   string
		field *string
	}{
		{EnvBackend, &config.Backend},
		{EnvAPIURL, &config.APIURL},
		{EnvDBPath, &config.DBPath},
		{EnvSocket, &config.SocketPath},
		{EnvBoard, &config.Board},
		{EnvLogLevel, &config.LogLevel},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.key); v != "" {
			*o.field = v
		}
	}
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults only
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
			}
		}
	}

	applyEnv(&config)
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate reports settings the application cannot start with
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendLocal, BackendRealtime:
	case BackendREST:
		if c.APIURL == "" {
			return ErrMissingAPIURL
		}
	default:
		return fmt.Errorf("%w %q (want %s, %s or %s)", ErrUnknownBackend, c.Backend, BackendLocal, BackendREST, BackendRealtime)
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %v", c.PollInterval)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the configured log level, or info when it doesn't parse
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the location Load reads from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todoboard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "todoboard", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Backend == "" {
		c.Backend = BackendLocal
	}
	if c.Board == "" {
		c.Board = DefaultBoard
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.PollInterval == 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}

	if dir, err := DataDir(); err == nil {
		if c.DBPath == "" {
			c.DBPath = filepath.Join(dir, "board.db")
		}
		if c.SocketPath == "" {
			c.SocketPath = filepath.Join(dir, "todoboard.sock")
		}
	}

	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
