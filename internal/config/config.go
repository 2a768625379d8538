// Package config handles the XDG configuration directory and settings.
//
// Settings are resolved in priority order: defaults, then the optional
// taskbot.toml config file, then environment variables, then CLI flags
// (passed in as Options).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "taskbot"

	// ConfigFile is the optional settings filename inside the config dir.
	ConfigFile = "taskbot.toml"

	// DataFile is the default task file for the file backend.
	DataFile = "tasks.yaml"

	// DBFile is the default database file for the sqlite backend.
	DBFile = "tasks.db"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// LogFile is the debug log filename.
	LogFile = "taskbot.log"
)

// Storage backend names.
const (
	BackendFile        = "file"
	BackendSQLite      = "sqlite"
	BackendGoogleTasks = "googletasks"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `toml:"-"`

	// Backend selects the storage backend: file, sqlite or googletasks.
	Backend string `toml:"backend"`

	// DataPath is where the file and sqlite backends keep their data.
	DataPath string `toml:"data_path"`

	// Quiet suppresses confirmations.
	Quiet bool `toml:"quiet"`

	// Debug enables logging to the debug log file.
	Debug bool `toml:"debug"`
}

// Options carries CLI flag overrides into Load. Zero values mean "not set".
type Options struct {
	Dir      string
	DataPath string
	Backend  string
	Quiet    bool
	Debug    bool
}

// Load resolves the configuration from defaults, the config file,
// environment variables and flag overrides, in that order.
func Load(opts Options) (*Config, error) {
	dir := opts.Dir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{Dir: dir, Backend: BackendFile}

	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("TASKBOT_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("TASKBOT_DATA"); v != "" {
		cfg.DataPath = v
	}

	if opts.Backend != "" {
		cfg.Backend = opts.Backend
	}
	if opts.DataPath != "" {
		cfg.DataPath = opts.DataPath
	}
	if opts.Quiet {
		cfg.Quiet = true
	}
	if opts.Debug {
		cfg.Debug = true
	}

	switch cfg.Backend {
	case BackendFile:
		if cfg.DataPath == "" {
			cfg.DataPath = filepath.Join(dir, DataFile)
		}
	case BackendSQLite:
		if cfg.DataPath == "" {
			cfg.DataPath = filepath.Join(dir, DBFile)
		}
	case BackendGoogleTasks:
		// Remote backend, no local data path.
	default:
		return nil, fmt.Errorf("unknown backend: %q", cfg.Backend)
	}

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// LogPath returns the path to the debug log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
