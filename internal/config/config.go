package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/idilsaglam/todoview/internal/logging"
	"github.com/idilsaglam/todoview/internal/ui"
)

// Config is the full widget configuration.
type Config struct {
	Theme     string     `toml:"theme"`
	Color     string     `toml:"color"`
	SeedFile  string     `toml:"seed_file"`
	NoSeed    bool       `toml:"no_seed"`
	Mouse     bool       `toml:"mouse"`
	AltScreen bool       `toml:"alt_screen"`
	Log       LogConfig  `toml:"log"`
	Todos     []SeedTodo `toml:"todos"`

	// Path of the file the config was read from, "" for none.
	Source string `toml:"-"`
}

// LogConfig selects where and how transitions are logged.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// SeedTodo is an initial todo declared inline in the config file.
type SeedTodo struct {
	Text      string `toml:"text"`
	Completed bool   `toml:"completed"`
}

var (
	logFormats = []string{"text", "json", "logfmt"}
	colorModes = []string{"auto", "always", "never"}
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:     "classic",
		Color:     "auto",
		Mouse:     true,
		AltScreen: true,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := ui.ThemeByName(c.Theme); err != nil {
		return err
	}
	if _, err := logging.LookupLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if !slices.Contains(colorModes, strings.ToLower(c.Color)) {
		return fmt.Errorf("unknown color mode %q (want one of %s)", c.Color, strings.Join(colorModes, ", "))
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("unknown log format %q (want one of %s)", c.Log.Format, strings.Join(logFormats, ", "))
	}
	for i, t := range c.Todos {
		if strings.TrimSpace(t.Text) == "" {
			return fmt.Errorf("todos[%d]: empty text", i)
		}
	}
	return nil
}
