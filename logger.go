// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nxos

import (
	"fmt"
	"log"
	"strings"
)

// MaxLogValueLength limits the length of logged values. Payloads can be
// large; anything beyond this is truncated.
const MaxLogValueLength = 1024

// Logger is the pluggable logging interface. Implementations receive
// structured key-value pairs. Two implementations ship with the package:
// DefaultLogger (standard log package with a level threshold) and NoOpLogger
// (the default, discards everything).
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// LogLevel is the severity threshold for DefaultLogger.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelNone
)

// String returns the string representation of a LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelNone:
		return "NONE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", l)
	}
}

// DefaultLogger writes level-filtered key=value lines through the standard
// log package.
//
// Output format: [LEVEL] message key1=value1 key2=value2
type DefaultLogger struct {
	level LogLevel
}

// NewDefaultLogger creates a DefaultLogger with the given threshold.
func NewDefaultLogger(level LogLevel) *DefaultLogger {
	return &DefaultLogger{level: level}
}

// Debug logs a debug message with structured key-value pairs.
func (l *DefaultLogger) Debug(msg string, keysAndValues ...any) {
	if l.level <= LogLevelDebug {
		l.log("DEBUG", msg, keysAndValues...)
	}
}

// Info logs an informational message with structured key-value pairs.
func (l *DefaultLogger) Info(msg string, keysAndValues ...any) {
	if l.level <= LogLevelInfo {
		l.log("INFO", msg, keysAndValues...)
	}
}

// Warn logs a warning message with structured key-value pairs.
func (l *DefaultLogger) Warn(msg string, keysAndValues ...any) {
	if l.level <= LogLevelWarn {
		l.log("WARN", msg, keysAndValues...)
	}
}

// Error logs an error message with structured key-value pairs.
func (l *DefaultLogger) Error(msg string, keysAndValues ...any) {
	if l.level <= LogLevelError {
		l.log("ERROR", msg, keysAndValues...)
	}
}

func (l *DefaultLogger) log(level, msg string, keysAndValues ...any) {
	var builder strings.Builder
	builder.Grow(len(level) + len(msg) + 4 + len(keysAndValues)*16)

	builder.WriteString("[")
	builder.WriteString(level)
	builder.WriteString("] ")
	builder.WriteString(msg)

	for i := 0; i < len(keysAndValues); i += 2 {
		builder.WriteString(" ")
		builder.WriteString(sanitizeLogValue(keysAndValues[i]))
		builder.WriteString("=")
		if i+1 < len(keysAndValues) {
			builder.WriteString(sanitizeLogValue(keysAndValues[i+1]))
		} else {
			// Odd-length pair list
			builder.WriteString("<MISSING>")
		}
	}

	log.Println(builder.String())
}

// sanitizeLogValue truncates oversized values and neutralizes line breaks so
// one call always produces one log line.
func sanitizeLogValue(val any) string {
	str := fmt.Sprintf("%v", val)
	if len(str) > MaxLogValueLength {
		str = str[:MaxLogValueLength] + "...[TRUNCATED]"
	}
	str = strings.ReplaceAll(str, "\n", " ")
	str = strings.ReplaceAll(str, "\r", " ")
	return str
}

// NoOpLogger discards all log messages. It is the default logger when no
// custom logger is configured.
type NoOpLogger struct{}

// Debug discards the log message.
func (n *NoOpLogger) Debug(_ string, _ ...any) {}

// Info discards the log message.
func (n *NoOpLogger) Info(_ string, _ ...any) {}

// Warn discards the log message.
func (n *NoOpLogger) Warn(_ string, _ ...any) {}

// Error discards the log message.
func (n *NoOpLogger) Error(_ string, _ ...any) {}
