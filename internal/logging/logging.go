// Package logging owns the process logger and its runtime level.
//
// The level lives in a [slog.LevelVar] held by a Controller, so the
// verbosity can be changed while the server is running (from a signal
// handler goroutine or any other control channel) without touching
// global logger state.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Controller pairs a logger with a mutable level. SetLevel is safe to
// call from any goroutine.
type Controller struct {
	level  slog.LevelVar
	logger *slog.Logger
}

// New builds a Controller whose logger writes to stderr at the given
// level. With jsonOut the handler emits JSON records, otherwise text,
// matching the two handler shapes used across the codebase.
func New(level string, jsonOut bool) (*Controller, error) {
	c := &Controller{}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	c.level.Set(lvl)

	opts := &slog.HandlerOptions{Level: &c.level}
	if jsonOut {
		c.logger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
	} else {
		c.logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	}

	return c, nil
}

// Logger returns the controller's logger.
func (c *Controller) Logger() *slog.Logger {
	return c.logger
}

// Level returns the current level.
func (c *Controller) Level() slog.Level {
	return c.level.Level()
}

// SetLevel parses and applies a new level. Records already in flight
// keep the level they were emitted under.
func (c *Controller) SetLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	c.level.Set(lvl)

	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
