package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/users-resources/internal/config"
)

const serviceName = "users-resources"

// NewLogger creates the process logger on stderr and sets it as the slog
// default. Format "json" is meant for production; anything else produces
// text with source locations. Every record carries the service name and
// version so logs from the server, the reindex and the cleanup commands can
// be told apart.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := !strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("service", serviceName),
		slog.String("version", Version),
	)
}

// parseLevel accepts slog level names, case-insensitive and with offsets
// such as "debug+2". Unknown values fall back to info.
func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
