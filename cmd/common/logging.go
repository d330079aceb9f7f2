// Package common holds utilities shared by the agent binaries: leveled
// logging and config file loading.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// LogLevel represents the level of logging.
type LogLevel int

const (
	// LogLevelDebug represents debug level logging.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo represents info level logging.
	LogLevelInfo
	// LogLevelWarn represents warning level logging.
	LogLevelWarn
	// LogLevelError represents error level logging.
	LogLevelError
	// LogLevelFatal represents fatal level logging.
	LogLevelFatal
)

// Logger is a small leveled logger over the standard library's log package.
type Logger struct {
	out   *log.Logger
	level LogLevel
}

// NewLogger creates a new logger writing to out at the given level.
func NewLogger(out io.Writer, level string) *Logger {
	return &Logger{
		out:   log.New(out, "", log.Ldate|log.Ltime),
		level: parseLogLevel(level),
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, v ...any) {
	l.logf(LogLevelDebug, "DEBUG", format, v...)
}

// Info logs an info message.
func (l *Logger) Info(format string, v ...any) {
	l.logf(LogLevelInfo, "INFO", format, v...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, v ...any) {
	l.logf(LogLevelWarn, "WARN", format, v...)
}

// Error logs an error message.
func (l *Logger) Error(format string, v ...any) {
	l.logf(LogLevelError, "ERROR", format, v...)
}

// Fatal logs a fatal message and exits.
func (l *Logger) Fatal(format string, v ...any) {
	l.logf(LogLevelFatal, "FATAL", format, v...)
	os.Exit(1)
}

func (l *Logger) logf(level LogLevel, prefix, format string, v ...any) {
	if l.level > level {
		return
	}
	l.out.Printf(prefix+": "+format, v...)
}

// parseLogLevel parses a log level string.
func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LogLevelDebug
	case "info", "":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	case "fatal":
		return LogLevelFatal
	default:
		fmt.Printf("Unknown log level: %s, defaulting to info\n", level)
		return LogLevelInfo
	}
}

// DefaultLogger returns a logger writing to stdout at info level.
func DefaultLogger() *Logger {
	return NewLogger(os.Stdout, "info")
}
