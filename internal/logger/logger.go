package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Logger defines the logging interface used throughout the application.
// It separates internal (debug) logs from user-facing messages.
//
// Internal methods (Info, Warning, Error) are typically written only to the
// debug log file; user-facing methods (InfoToUser, WarningToUser, Success,
// StatusMessage) are always shown on the terminal.
type Logger interface {
	// Info logs an informational message for debugging purposes.
	Info(format string, args ...interface{})

	// Warning logs a warning message for debugging purposes.
	Warning(format string, args ...interface{})

	// Error logs an error message. Errors are always shown to the user.
	Error(format string, args ...interface{})

	// InfoToUser logs an informational message intended for users.
	InfoToUser(format string, args ...interface{})

	// WarningToUser logs a warning message intended for users.
	WarningToUser(format string, args ...interface{})

	// Success logs a success message to the user.
	Success(format string, args ...interface{})

	// StatusMessage logs a status message to the user.
	StatusMessage(format string, args ...interface{})

	// Close flushes and closes any open log file handles.
	Close() error
}

// DefaultLogger provides structured logging capability and implements the Logger interface
type DefaultLogger struct {
	mu      sync.Mutex
	logger  *slog.Logger
	enabled bool
	logFile string
	verbose bool
	stdout  io.Writer
	stderr  io.Writer
	file    *os.File // Store file handle for closing
}

// New creates a new Logger instance
func New(enabled bool, logFile string, verbose bool) Logger {
	return NewWithOutput(enabled, logFile, verbose, os.Stdout, os.Stderr)
}

// NewWithOutput creates a DefaultLogger with custom output writers
func NewWithOutput(enabled bool, logFile string, verbose bool, stdout, stderr io.Writer) *DefaultLogger {
	var logger *slog.Logger

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	var file *os.File

	if enabled {
		logDir := filepath.Dir(logFile)
		if logDir != "." {
			err := os.MkdirAll(logDir, 0755)
			if err != nil {
				_, _ = fmt.Fprintf(stderr, "⚠️ Failed to create log directory: %v\n", err)
			}
		}

		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			file = f
			fileHandler := slog.NewTextHandler(f, opts)
			logger = slog.New(fileHandler)
			_, _ = fmt.Fprintf(stdout, "🔍 Debug logging enabled. Logs will be written to: %s\n", logFile)

			logger.Info("nbversion debug logging started")
		} else {
			// Fallback to standard logger
			logger = slog.New(slog.NewTextHandler(stderr, opts))
			_, _ = fmt.Fprintf(stderr, "⚠️ Failed to open log file: %v, using stderr instead\n", err)
		}
	} else {
		// Setup non-file logger
		logger = slog.New(slog.NewTextHandler(stderr, opts))
	}

	return &DefaultLogger{
		logger:  logger,
		enabled: enabled,
		logFile: logFile,
		verbose: verbose,
		stdout:  stdout,
		stderr:  stderr,
		file:    file,
	}
}

// Info logs an informational message (file only)
func (l *DefaultLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled {
		return
	}

	msg := fmt.Sprintf(format, args...)
	l.logger.Info(msg)
}

// InfoToUser logs an informational message to both file and stdout
func (l *DefaultLogger) InfoToUser(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Info(msg)
	}

	_, _ = fmt.Fprintf(l.stdout, "ℹ️  %s\n", msg)
}

// Success logs a success message to both file and stdout
func (l *DefaultLogger) Success(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Info(msg)
	}

	_, _ = fmt.Fprintf(l.stdout, "✅ %s\n", msg)
}

// Warning logs a warning message
func (l *DefaultLogger) Warning(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Warn(msg)
	}

	// Always show the message to the user when verbose is on,
	// regardless of whether file logging is enabled
	if l.verbose {
		_, _ = fmt.Fprintf(l.stdout, "⚠️  %s\n", msg)
	}
}

// WarningToUser logs a warning message to both file and stdout
func (l *DefaultLogger) WarningToUser(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Warn(msg)
	}

	_, _ = fmt.Fprintf(l.stdout, "⚠️  %s\n", msg)
}

// Error logs an error message
func (l *DefaultLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.logger.Error(msg)
	}

	// Always show errors to the user regardless of debug status
	_, _ = fmt.Fprintf(l.stderr, "❌ %s\n", msg)
}

// StatusMessage prints a status message to stdout only (no logging)
func (l *DefaultLogger) StatusMessage(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(l.stdout, msg)
}

// Close ensures any buffered data is written and closes open log file handles
func (l *DefaultLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		// Sync ensures any buffered data is flushed to disk before closing
		if err := l.file.Sync(); err != nil {
			return err
		}
		return l.file.Close()
	}
	return nil
}

// SetStdout sets a custom writer for user-facing stdout messages only.
// This method is thread-safe and is primarily intended for testing.
func (l *DefaultLogger) SetStdout(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout = w
}

// SetStderr sets a custom writer for user-facing stderr messages only.
// This method is thread-safe and is primarily intended for testing.
func (l *DefaultLogger) SetStderr(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stderr = w
}
