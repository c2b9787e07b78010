// Package config loads kantui settings from a TOML file with
// environment variable overrides. A missing config file is not an
// error; every setting has a usable default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "KANTUI_"

// Config is the full kantui configuration.
type Config struct {
	Board   BoardConfig   `toml:"board"`
	Archive ArchiveConfig `toml:"archive"`
	Log     LogConfig     `toml:"log"`
}

// BoardConfig locates the board file and seeds new boards.
type BoardConfig struct {
	// Path is the board file used when --board is not given.
	Path string `toml:"path"`

	// Columns are the headings created by `kantui init`.
	Columns []string `toml:"columns"`
}

// ArchiveConfig locates the completed-card archive database.
type ArchiveConfig struct {
	Path string `toml:"path"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Path:    "kanban.md",
			Columns: []string{"Todo", "Doing", "Done"},
		},
		Archive: ArchiveConfig{
			Path: filepath.Join(configDir(), "archive.db"),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	return filepath.Join(configDir(), "config.toml")
}

// Load reads the config file at path, applies environment overrides,
// and fills unset values with defaults. When path is empty the
// default location is used, and its absence is tolerated; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides settings from KANTUI_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "BOARD"); v != "" {
		cfg.Board.Path = v
	}
	if v := os.Getenv(EnvPrefix + "COLUMNS"); v != "" {
		cols := []string{}
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cols = append(cols, c)
			}
		}
		if len(cols) > 0 {
			cfg.Board.Columns = cols
		}
	}
	if v := os.Getenv(EnvPrefix + "ARCHIVE"); v != "" {
		cfg.Archive.Path = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

func configDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "kantui")
	}
	return "."
}
