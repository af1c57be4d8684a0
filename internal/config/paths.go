package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appName  = "todoview"
	fileName = "todoview.toml"
)

var projectFileNames = []string{fileName, "." + fileName}

// UserConfigPath returns where the user-level config file lives, whether or
// not it exists.
func UserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, fileName)
}

func findUserConfigFile() string {
	p := UserConfigPath()
	if p != "" && fileExists(p) {
		return p
	}
	return ""
}

func findProjectConfigFile() string {
	for _, name := range projectFileNames {
		if fileExists(name) {
			return name
		}
	}
	return ""
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// expandPath expands environment variables and a leading ~/ in p.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}
