// Package logging provides a logging abstraction layer that decouples the
// application from a specific logging framework. The production adapter is
// backed by logrus; tests use MockLogger.
package logging

import "github.com/sirupsen/logrus"

// Logger defines the interface for structured logging throughout the
// application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger

	// Fatal logs a fatal-level message and exits the program
	Fatal(msg string, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// defaultLogger is the process-wide logger handed out by GetLogger.
var defaultLogger Logger = NewLogrusAdapterFromLogger(logrus.StandardLogger())

// GetLogger returns the shared logger instance.
func GetLogger() Logger {
	return defaultLogger
}

// SetLogger replaces the shared logger instance. Packages that cached the
// previous instance keep it; call this before wiring components.
func SetLogger(logger Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

// SetAllLogLevels forces the given level on the global logrus logger,
// which every adapter created from the standard logger inherits.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
}
