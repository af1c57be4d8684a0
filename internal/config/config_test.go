package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// isolate points user config lookup and the working directory at empty temp
// dirs and clears TODOVIEW_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, name := range []string{"THEME", "COLOR", "SEED", "NO_SEED", "NO_MOUSE", "INLINE", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE"} {
		t.Setenv(envPrefix+name, "")
	}
	wd := t.TempDir()
	t.Chdir(wd)
	return wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "classic" || !cfg.Mouse || !cfg.AltScreen || cfg.NoSeed {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" || cfg.Log.File != "" {
		t.Errorf("log defaults = %+v", cfg.Log)
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want none", cfg.Source)
	}
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)
	writeFile(t, UserConfigPath(), `
theme = "neon"
mouse = false

[log]
level = "debug"
format = "json"
`)
	writeFile(t, "todoview.toml", `
theme = "mono"
`)

	cfg, err := Load(flags(t))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("project file should override user theme, got %q", cfg.Theme)
	}
	if cfg.Mouse || cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("user file values lost: %+v", cfg)
	}
	if cfg.Source != "todoview.toml" {
		t.Errorf("Source = %q", cfg.Source)
	}

	t.Setenv("TODOVIEW_THEME", "neon")
	t.Setenv("TODOVIEW_LOG_LEVEL", "warn")
	cfg, err = Load(flags(t))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "neon" || cfg.Log.Level != "warn" {
		t.Errorf("env should override files: %+v", cfg)
	}

	cfg, err = Load(flags(t, "--theme", "classic", "--no-mouse=false", "--inline"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "classic" {
		t.Errorf("flag should override env, got %q", cfg.Theme)
	}
	if !cfg.Mouse {
		t.Error("--no-mouse=false should re-enable the mouse")
	}
	if cfg.AltScreen {
		t.Error("--inline should disable the alt screen")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("unset flag overrode env: %q", cfg.Log.Level)
	}
}

func TestLoad_ColorMode(t *testing.T) {
	isolate(t)
	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Color != "auto" {
		t.Errorf("default Color = %q, want auto", cfg.Color)
	}

	writeFile(t, "todoview.toml", `color = "never"`)
	t.Setenv("TODOVIEW_COLOR", "always")
	cfg, err = Load(flags(t))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Color != "always" {
		t.Errorf("env should override file, got %q", cfg.Color)
	}

	cfg, err = Load(flags(t, "--color", "never"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Color != "never" {
		t.Errorf("flag should override env, got %q", cfg.Color)
	}
}

func TestLoad_ExplicitFileSkipsOthers(t *testing.T) {
	wd := isolate(t)
	writeFile(t, "todoview.toml", `theme = "mono"`)
	explicit := filepath.Join(wd, "other.toml")
	writeFile(t, explicit, `no_seed = true`)

	cfg, err := Load(flags(t, "--config", explicit))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "classic" {
		t.Errorf("project file read despite --config: theme %q", cfg.Theme)
	}
	if !cfg.NoSeed || cfg.Source != explicit {
		t.Errorf("explicit file not applied: %+v", cfg)
	}
}

func TestLoad_InlineTodosReplaceLowerLayer(t *testing.T) {
	isolate(t)
	writeFile(t, UserConfigPath(), `
[[todos]]
text = "from user"
completed = true

[[todos]]
text = "second"
`)
	writeFile(t, ".todoview.toml", `
[[todos]]
text = "from project"
`)
	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Todos) != 1 || cfg.Todos[0].Text != "from project" || cfg.Todos[0].Completed {
		t.Errorf("Todos = %+v", cfg.Todos)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr string
	}{
		{name: "unknown theme", file: `theme = "solarized"`, wantErr: "unknown theme"},
		{name: "unknown key", file: "colour = \"red\"\n", wantErr: "unknown keys: colour"},
		{name: "bad level", file: "[log]\nlevel = \"loud\"\n", wantErr: "log level"},
		{name: "fatal level is accepted", file: "[log]\nlevel = \"fatal\"\n"},
		{name: "bad color", file: `color = "sometimes"`, wantErr: "unknown color mode"},
		{name: "bad format", file: "[log]\nformat = \"xml\"\n", wantErr: "unknown log format"},
		{name: "empty todo", file: "[[todos]]\ntext = \"  \"\n", wantErr: "todos[0]: empty text"},
		{name: "bad toml", file: "theme = ", wantErr: "loading project config file"},
		{name: "bad env bool", env: map[string]string{"TODOVIEW_NO_MOUSE": "maybe"}, wantErr: "TODOVIEW_NO_MOUSE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if tt.file != "" {
				writeFile(t, "todoview.toml", tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(nil)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TODOVIEW_TEST_DIR", "/srv/todo")

	tests := map[string]string{
		"":                          "",
		"~":                         home,
		"~/seed.json":               filepath.Join(home, "seed.json"),
		"$TODOVIEW_TEST_DIR/a.json": "/srv/todo/a.json",
		"plain.json":                "plain.json",
	}
	for in, want := range tests {
		if got := expandPath(in); got != want {
			t.Errorf("expandPath(%q) = %q, want %q", in, got, want)
		}
	}
}
