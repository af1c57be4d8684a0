package config

import (
	"fmt"
	"os"
	"strconv"
)

const envPrefix = "TODOVIEW_"

// loadFromEnv overrides cfg from TODOVIEW_* variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv(envPrefix + "THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(envPrefix + "COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv(envPrefix + "SEED"); v != "" {
		cfg.SeedFile = v
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(envPrefix + "LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(envPrefix + "LOG_FILE"); v != "" {
		cfg.Log.File = v
	}

	bools := []struct {
		name   string
		target *bool
		invert bool
	}{
		{"NO_SEED", &cfg.NoSeed, false},
		{"NO_MOUSE", &cfg.Mouse, true},
		{"INLINE", &cfg.AltScreen, true},
	}
	for _, b := range bools {
		v := os.Getenv(envPrefix + b.name)
		if v == "" {
			continue
		}
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, b.name, err)
		}
		*b.target = on != b.invert
	}
	return nil
}
