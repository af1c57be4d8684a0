package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// RegisterFlags defines the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default: user and project "+fileName+")")
	fs.String("theme", "", "theme: classic, neon or mono")
	fs.String("color", "", "colour output: auto, always or never")
	fs.String("seed", "", "JSON file holding the initial todos")
	fs.Bool("no-seed", false, "start with an empty list")
	fs.Bool("no-mouse", false, "disable mouse support")
	fs.Bool("inline", false, "draw inline instead of on the alternate screen")
	fs.String("log-level", "", "log level: debug, info, warn or error")
	fs.String("log-format", "", "log format: text, json or logfmt")
	fs.String("log-file", "", "append logs to this file (default: discard)")
}

// Load builds the configuration from every source. fs may be nil; otherwise
// it must carry the flags from RegisterFlags.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := Default()

	explicit := ""
	if fs != nil {
		explicit, _ = fs.GetString("config")
	}

	if explicit != "" {
		if err := loadConfigFile(cfg, expandPath(explicit)); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", explicit, err)
		}
	} else {
		if p := findUserConfigFile(); p != "" {
			if err := loadConfigFile(cfg, p); err != nil {
				return nil, fmt.Errorf("loading user config file %s: %w", p, err)
			}
		}
		if p := findProjectConfigFile(); p != "" {
			if err := loadConfigFile(cfg, p); err != nil {
				return nil, fmt.Errorf("loading project config file %s: %w", p, err)
			}
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	if fs != nil {
		if err := applyFlags(cfg, fs); err != nil {
			return nil, fmt.Errorf("parsing flags: %w", err)
		}
	}

	cfg.SeedFile = expandPath(cfg.SeedFile)
	cfg.Log.File = expandPath(cfg.Log.File)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	// inline todos replace, never append to, those of a lower layer
	var fresh struct {
		Todos []SeedTodo `toml:"todos"`
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if md.IsDefined("todos") {
		if _, err := toml.DecodeFile(path, &fresh); err != nil {
			return err
		}
		cfg.Todos = fresh.Todos
	}
	cfg.Source = path
	return nil
}

func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	strs := []struct {
		name   string
		target *string
	}{
		{"theme", &cfg.Theme},
		{"color", &cfg.Color},
		{"seed", &cfg.SeedFile},
		{"log-level", &cfg.Log.Level},
		{"log-format", &cfg.Log.Format},
		{"log-file", &cfg.Log.File},
	}
	for _, s := range strs {
		if !fs.Changed(s.name) {
			continue
		}
		v, err := fs.GetString(s.name)
		if err != nil {
			return err
		}
		*s.target = v
	}

	bools := []struct {
		name   string
		target *bool
		invert bool
	}{
		{"no-seed", &cfg.NoSeed, false},
		{"no-mouse", &cfg.Mouse, true},
		{"inline", &cfg.AltScreen, true},
	}
	for _, b := range bools {
		if !fs.Changed(b.name) {
			continue
		}
		v, err := fs.GetBool(b.name)
		if err != nil {
			return err
		}
		*b.target = v != b.invert
	}
	return nil
}
