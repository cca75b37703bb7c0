// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// NewLogger returns a text logger on w. quiet raises the level to error so
// warnings disappear too. An unknown level falls back to info.
func NewLogger(w io.Writer, level string, quiet bool) *slog.Logger {
	l, err := ParseLevel(level)
	if err != nil {
		l = slog.LevelInfo
	}
	if quiet {
		l = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// Warnf logs a user-facing warning.
func Warnf(log *slog.Logger, format string, a ...any) {
	log.Warn(fmt.Sprintf(format, a...))
}
