// Package config loads widget settings.
//
// Sources, each overriding the previous one:
// 1. Built-in defaults
// 2. User config file ($XDG_CONFIG_HOME/todoview/todoview.toml or the OS equivalent)
// 3. Project config file (./todoview.toml, then ./.todoview.toml)
// 4. Environment variables (TODOVIEW_*)
// 5. Command-line flags that were set explicitly
//
// An explicit --config file replaces both 2 and 3.
package config
