// Package logger holds the process-wide structured logger used by landkit.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Writer  io.Writer  // Destination. Default: os.Stderr
	LogFile string     // If set, logs are appended to this file instead of Writer
	JSON    bool       // JSON handler instead of text
	Level   slog.Level // Minimum log level. Default: LevelInfo
}

// file is the log file opened by the last Init, if any.
var file *os.File

// Init configures logging. Call from main() before any log calls.
// If opts.Enabled is false, all log output is discarded.
// A log file opened by a previous Init is closed.
func Init(opts Options) error {
	if err := Close(); err != nil {
		return err
	}
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		file = f
		w = f
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	if opts.JSON {
		L = slog.New(slog.NewJSONHandler(w, handlerOpts))
	} else {
		L = slog.New(slog.NewTextHandler(w, handlerOpts))
	}
	return nil
}

// Close discards further output and closes the log file, if Init opened one.
func Close() error {
	L = slog.New(slog.NewTextHandler(io.Discard, nil))
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// ParseLevel maps "debug", "info", "warn" or "error" (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
