// Package logging owns the segaug process logger. The CLI configures it once
// from the loaded config (log_level, log_json); the batch runner and the
// metrics listener log through it. Library packages return errors and never
// log.
//
// Until Configure runs, records at info and above go to stderr as text.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// ErrUnknownLevel indicates a log level name outside debug|info|warn|error.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Options selects the level and output encoding.
type Options struct {
	Level string // debug|info|warn|error; empty means info
	JSON  bool
}

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// Configure replaces the process logger with one writing to w. On an unknown
// level the current logger is kept.
func Configure(w io.Writer, opts Options) error {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}
	ho := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler = slog.NewTextHandler(w, ho)
	if opts.JSON {
		h = slog.NewJSONHandler(w, ho)
	}
	current.Store(slog.New(h))

	return nil
}

// ParseLevel maps a case-insensitive level name to its slog level.
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
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// L returns the process logger.
func L() *slog.Logger { return current.Load() }

// With returns the process logger tagged with component=name. The tag is
// bound to the logger current at call time.
func With(name string) *slog.Logger { return L().With("component", name) }
