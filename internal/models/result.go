package models

import "time"

// Command outcome status constants
const (
	StatusOK     = "OK"     // Command executed
	StatusFailed = "FAILED" // Command was rejected, directory unchanged
	StatusExit   = "EXIT"   // Session ended by Exit
)

// CommandResult represents the outcome of one command line
type CommandResult struct {
	LineNumber int           // 1-based input line number
	Raw        string        // Trimmed command text
	Verb       string        // Verb as typed on the command line ("Unknown" if unrecognized)
	Status     string        // Status: "OK", "FAILED", "EXIT"
	Output     []string      // Lines produced for the user
	Error      error         // Error if the command failed
	Duration   time.Duration // Time taken to execute
}

// Failed reports whether the command was rejected.
func (r CommandResult) Failed() bool {
	return r.Status == StatusFailed
}

// SessionSummary represents the aggregate result of one directory session
type SessionSummary struct {
	SessionID   string          // Unique session identifier
	Source      string          // Input source (stdin or script path)
	Lines       int             // Input lines read, including blanks and comments
	Commands    int             // Commands executed
	Failures    int             // Commands that failed
	Employees   int             // Memberships in the directory at the end
	Departments int             // Departments in the directory at the end
	Duration    time.Duration   // Total session time
	Failed      []CommandResult // Details of failed commands
}
