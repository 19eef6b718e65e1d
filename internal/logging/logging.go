// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the diagnostics logger.
//
// The TUI owns the screen, so diagnostics go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel names a zerolog level.
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// ParseLevel maps a level name to a zerolog level. Unknown names map to warn.
func ParseLevel(level LogLevel) zerolog.Level {
	switch LogLevel(strings.ToLower(string(level))) {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// LevelFromEnv reads ICV_LOG_LEVEL, then DEBUG, falling back to fallback.
func LevelFromEnv(fallback LogLevel) LogLevel {
	if level := os.Getenv("ICV_LOG_LEVEL"); level != "" {
		return LogLevel(level)
	}
	debug := strings.ToLower(os.Getenv("DEBUG"))
	if debug == "1" || debug == "true" {
		return LevelDebug
	}
	return fallback
}

// New returns a logger writing to w. pretty selects the console writer.
func New(w io.Writer, level LogLevel, pretty bool) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// Open returns a logger appending to path. An empty path yields a no-op
// logger. The returned closer releases the file.
func Open(path string, level LogLevel) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f, level, true), f, nil
}
