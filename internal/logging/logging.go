// Package logging configures colored structured logging with tint.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (overrides the configured level)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a tint logger writing to w at the given level. LOG_LEVEL,
// when set to a known level, takes precedence.
func New(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	if l, ok := levelFromEnv(); ok {
		level = l
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

// Setup installs a stderr tint logger as the slog default and returns it.
func Setup(level slog.Level, noColor bool) *slog.Logger {
	l := New(os.Stderr, level, noColor)
	slog.SetDefault(l)
	return l
}

func levelFromEnv() (slog.Level, bool) {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}
