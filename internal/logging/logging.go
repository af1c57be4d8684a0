// Package logging builds the structured logger used across the widget.
//
// The interactive widget owns the terminal, so logs never go to stdout:
// they are appended to a file when one is configured and dropped otherwise.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Options hold logger configuration.
type Options struct {
	Level  string
	Format string
	File   string
	Prefix string
}

// New returns a logger for opts and the closer of its sink. Callers must
// close it once the logger is no longer used.
func New(opts Options) (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "todo"
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       ParseFormatter(opts.Format),
		ReportTimestamp: opts.File != "",
		Prefix:          prefix,
	})
	return logger, closer, nil
}

var levels = map[string]log.Level{
	"debug":   log.DebugLevel,
	"info":    log.InfoLevel,
	"warn":    log.WarnLevel,
	"warning": log.WarnLevel,
	"error":   log.ErrorLevel,
	"fatal":   log.FatalLevel,
}

// LookupLevel resolves a level name. An empty name means info.
func LookupLevel(level string) (log.Level, error) {
	if level == "" {
		return log.InfoLevel, nil
	}
	l, ok := levels[strings.ToLower(level)]
	if !ok {
		return log.InfoLevel, fmt.Errorf("unknown level %q (want debug, info, warn, error or fatal)", level)
	}
	return l, nil
}

// ParseLevel parses a level name, falling back to info.
func ParseLevel(level string) log.Level {
	l, _ := LookupLevel(level)
	return l
}

// ParseFormatter parses a formatter name, falling back to text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
