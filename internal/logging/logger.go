package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/graphname/pkg/store"
)

// New creates a configured application logger.
// It writes to Stderr (to keep Stdout for the rendered view).
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a flag value (debug, info, warn, error) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Hooks returns store hooks that log every event at debug level.
func Hooks(logger *slog.Logger) store.Hooks {
	log := func(e *store.Event) {
		attrs := []any{
			"store", e.Store,
			"event", string(e.Type),
			"subscribers", e.Subscribers,
		}
		if e.Value != nil {
			attrs = append(attrs, "value", e.Value)
		}
		logger.Debug("store event", attrs...)
	}
	return store.Hooks{
		OnSet:         log,
		OnNotify:      log,
		OnSubscribe:   log,
		OnUnsubscribe: log,
	}
}
