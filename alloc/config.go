package alloc

import (
	"context"
	"log/slog"
	"os"
)

// Config controls optional heap behaviour.
type Config struct {
	// Logger receives debug records for arena growth, splits, merges and
	// failed requests. When nil, records go to stderr if HEAPKIT_LOG_ALLOC
	// is set and are dropped otherwise.
	Logger *slog.Logger
}

// DefaultConfig is used when New is given a nil config.
var DefaultConfig = Config{}

// logger resolves the configured logger and whether debug records should be
// built at all.
func (c *Config) logger() (*slog.Logger, bool) {
	if c.Logger != nil {
		return c.Logger, c.Logger.Enabled(context.Background(), slog.LevelDebug)
	}
	if os.Getenv("HEAPKIT_LOG_ALLOC") != "" {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		return l.With("component", "alloc"), true
	}
	return nil, false
}
