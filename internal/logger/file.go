package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/harrison/staffdir/internal/models"
)

// FileLogger logs session events to files in a log directory.
// It creates one timestamped log file per session and maintains a
// latest.log symlink pointing to the most recent one.
// It is thread-safe and supports log level filtering.
type FileLogger struct {
	logDir      string
	sessionLog  *os.File
	sessionFile string
	logLevel    string
	mu          sync.Mutex
}

// NewFileLoggerWithDirAndLevel creates a new FileLogger with a custom log directory and log level.
func NewFileLoggerWithDirAndLevel(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// session-YYYYMMDD-HHMMSS.log; nanoseconds keep back-to-back sessions apart
	now := time.Now()
	sessionFile := filepath.Join(logDir, fmt.Sprintf("session-%s-%09d.log", now.Format("20060102-150405"), now.Nanosecond()))

	file, err := os.OpenFile(sessionFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create session log file: %w", err)
	}

	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(sessionFile), symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	logger := &FileLogger{
		logDir:      logDir,
		sessionLog:  file,
		sessionFile: sessionFile,
		logLevel:    normalizeLogLevel(logLevel),
	}

	logger.write("=== staffdir Session Log ===\n")
	logger.write(fmt.Sprintf("Started at: %s\n\n", now.Format(time.RFC3339)))

	return logger, nil
}

// Path returns the session log file path.
func (fl *FileLogger) Path() string {
	return fl.sessionFile
}

// shouldLog checks if a message at the given level should be logged.
func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}
	fl.write(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// LogSessionStart records the session id and input source.
func (fl *FileLogger) LogSessionStart(sessionID, source string) {
	if !fl.shouldLog("info") {
		return
	}
	fl.write(fmt.Sprintf("[%s] Session: %s\n[%s] Source: %s\n", timestamp(), sessionID, timestamp(), source))
}

// LogCommand logs one command outcome.
func (fl *FileLogger) LogCommand(result models.CommandResult) {
	level := commandLevel(result)
	fl.logWithLevel(strings.ToUpper(level), formatCommand(result))
}

// LogSummary logs the session summary with final statistics at INFO level.
func (fl *FileLogger) LogSummary(summary models.SessionSummary) {
	if !fl.shouldLog("info") {
		return
	}

	var sb strings.Builder
	sb.WriteString("\n=== Session Summary ===\n")
	fmt.Fprintf(&sb, "Session: %s\n", summary.SessionID)
	fmt.Fprintf(&sb, "Source: %s\n", summary.Source)
	fmt.Fprintf(&sb, "Lines read: %d\n", summary.Lines)
	fmt.Fprintf(&sb, "Commands: %d\n", summary.Commands)
	fmt.Fprintf(&sb, "Failed: %d\n", summary.Failures)
	fmt.Fprintf(&sb, "Employees: %d\n", summary.Employees)
	fmt.Fprintf(&sb, "Departments: %d\n", summary.Departments)
	fmt.Fprintf(&sb, "Duration: %s\n", formatDuration(summary.Duration))

	if len(summary.Failed) > 0 {
		sb.WriteString("\nFailed commands:\n")
		for _, r := range summary.Failed {
			fmt.Fprintf(&sb, "  - line %d: %s: %v\n", r.LineNumber, r.Raw, r.Error)
		}
	}

	fl.write(sb.String())
}

// Close closes the session log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.sessionLog == nil {
		return nil
	}
	err := fl.sessionLog.Close()
	fl.sessionLog = nil
	return err
}

// write appends message to the session log.
func (fl *FileLogger) write(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.sessionLog == nil {
		return
	}
	fl.sessionLog.WriteString(message)
}
