// Package logging configures the debug log.
//
// The conversation owns stdout, so debug logs go to a JSON log file in the
// config directory. Without --debug the logger discards everything.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger and a closer for its destination. When debug is
// false the logger discards all output.
func New(path string, debug bool) (*slog.Logger, io.Closer, error) {
	if !debug {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f, nil
}
