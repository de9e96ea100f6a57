// ABOUTME: gymtrack configuration management with backend selection.
// ABOUTME: Handles settings, the signed-in profile, env overrides and the backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/charmbracelet/log"
	"github.com/harperreed/gymtrack/internal/charm"
	"github.com/harperreed/gymtrack/internal/session"
	"github.com/harperreed/gymtrack/internal/storage"
)

// Backends lists the supported storage backends.
var Backends = []string{"sqlite", "badger", "charm", "memory"}

// Config stores gymtrack configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "badger", "charm" or "memory".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage.
	// SQLite puts gymtrack.db here. Badger uses a badger/ folder here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/gymtrack.
	DataDir string `json:"data_dir,omitempty"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `json:"log_level,omitempty"`

	// CharmHost overrides the charm server for the charm backend.
	CharmHost string `json:"charm_host,omitempty"`

	// Profile is the signed-in user. Nil means signed out.
	Profile *session.User `json:"profile,omitempty"`
}

// envOverrides are read from the environment and win over the config file.
type envOverrides struct {
	Backend   string `env:"GYMTRACK_BACKEND"`
	DataDir   string `env:"GYMTRACK_DATA_DIR"`
	LogLevel  string `env:"GYMTRACK_LOG_LEVEL"`
	CharmHost string `env:"GYMTRACK_CHARM_HOST"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogLevel returns the configured log level, defaulting to "warn".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// Session returns the session for the configured profile.
func (c *Config) Session() *session.Session {
	return session.New(c.Profile)
}

// NewLogger builds the application logger at the configured level.
func (c *Config) NewLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(c.GetLogLevel())
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "gymtrack",
		Level:  level,
	}), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != '/') {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, rest)
}

// OpenBackend creates a storage Backend based on the configured backend.
func (c *Config) OpenBackend() (storage.Backend, error) {
	return OpenBackend(c.GetBackend(), c.GetDataDir(), c.CharmHost)
}

// OpenBackend opens a named backend rooted at dataDir.
func OpenBackend(backend, dataDir, charmHost string) (storage.Backend, error) {
	var (
		b   storage.Backend
		err error
	)
	switch backend {
	case "sqlite":
		b, err = storage.OpenSQLite(storage.DefaultDBPath(dataDir))
	case "badger":
		b, err = storage.OpenBadger(filepath.Join(dataDir, "badger"))
	case "charm":
		b, err = charm.Open(charm.DefaultDBName, charmHost)
	case "memory":
		b = storage.NewMemoryBackend()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetConfigPath returns $XDG_CONFIG_HOME/gymtrack/config.json, falling
// back to ~/.config when XDG_CONFIG_HOME is unset.
func GetConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = ExpandPath("~/.config")
	}
	return filepath.Join(base, "gymtrack", "config.json")
}

// Load reads config from disk, then applies environment overrides.
func Load() (*Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return nil, err
	}

	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if o.Backend != "" {
		cfg.Backend = o.Backend
	}
	if o.DataDir != "" {
		cfg.DataDir = o.DataDir
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.CharmHost != "" {
		cfg.CharmHost = o.CharmHost
	}
	return cfg, nil
}

// LoadFile reads config from disk without environment overrides.
// Use it when the config will be saved back.
func LoadFile() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
