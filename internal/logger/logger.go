// Package logger provides logging implementations for staffdir sessions.
//
// Loggers record command outcomes and session summaries at configurable
// verbosity. Implementations are safe for concurrent use and write to the
// console or to per-session log files.
package logger

import (
	"fmt"
	"strings"
	"time"

	"github.com/harrison/staffdir/internal/models"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// Logger receives session events.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogSessionStart(sessionID, source string)
	LogCommand(result models.CommandResult)
	LogSummary(summary models.SessionSummary)
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// timestamp returns the current time formatted as HH:MM:SS.
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// commandLevel picks the level a command result is logged at.
// Failures are warnings; successful commands are debug noise.
func commandLevel(result models.CommandResult) string {
	if result.Failed() {
		return "warn"
	}
	return "debug"
}

// formatCommand renders a command result on one line.
// Format: "line N: <raw> -> OK (3 lines)" or "line N: <raw> -> FAILED: <err>"
func formatCommand(result models.CommandResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "line %d: %s -> %s", result.LineNumber, result.Raw, result.Status)
	if result.Error != nil {
		fmt.Fprintf(&sb, ": %v", result.Error)
	} else if len(result.Output) > 0 {
		fmt.Fprintf(&sb, " (%d %s)", len(result.Output), plural(len(result.Output), "line", "lines"))
	}
	return sb.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// formatDuration converts a time.Duration to a human-readable string.
// Examples: "250ms", "5s", "1m30s"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		minutes := d / time.Minute
		remainder := d % time.Minute
		if remainder < time.Second {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, remainder/time.Second)
	case d >= time.Second:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// NoOpLogger is a Logger implementation that discards all log messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(message string)                  {}
func (n *NoOpLogger) LogDebug(message string)                  {}
func (n *NoOpLogger) LogInfo(message string)                   {}
func (n *NoOpLogger) LogWarn(message string)                   {}
func (n *NoOpLogger) LogError(message string)                  {}
func (n *NoOpLogger) LogSessionStart(sessionID, source string) {}
func (n *NoOpLogger) LogCommand(result models.CommandResult)   {}
func (n *NoOpLogger) LogSummary(summary models.SessionSummary) {}

// MultiLogger fans every event out to several loggers.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger combines loggers. Nil entries are skipped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

func (m *MultiLogger) LogTrace(message string) {
	for _, l := range m.loggers {
		l.LogTrace(message)
	}
}

func (m *MultiLogger) LogDebug(message string) {
	for _, l := range m.loggers {
		l.LogDebug(message)
	}
}

func (m *MultiLogger) LogInfo(message string) {
	for _, l := range m.loggers {
		l.LogInfo(message)
	}
}

func (m *MultiLogger) LogWarn(message string) {
	for _, l := range m.loggers {
		l.LogWarn(message)
	}
}

func (m *MultiLogger) LogError(message string) {
	for _, l := range m.loggers {
		l.LogError(message)
	}
}

func (m *MultiLogger) LogSessionStart(sessionID, source string) {
	for _, l := range m.loggers {
		l.LogSessionStart(sessionID, source)
	}
}

func (m *MultiLogger) LogCommand(result models.CommandResult) {
	for _, l := range m.loggers {
		l.LogCommand(result)
	}
}

func (m *MultiLogger) LogSummary(summary models.SessionSummary) {
	for _, l := range m.loggers {
		l.LogSummary(summary)
	}
}
