// Package session runs the read-dispatch loop of the directory command
// language. A Session owns exactly one Directory; every line is parsed,
// executed and reported before the next one is read.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/harrison/staffdir/internal/command"
	"github.com/harrison/staffdir/internal/directory"
	"github.com/harrison/staffdir/internal/logger"
	"github.com/harrison/staffdir/internal/models"
)

// ErrStopped is returned by Run when StopOnError ends the session early.
var ErrStopped = errors.New("session stopped on failed command")

// Options tunes how a Session reads and reports.
type Options struct {
	Source      string // label for logs, e.g. "stdin" or a script path
	Prompt      string // printed before each line when ShowPrompt is set
	ShowPrompt  bool
	Color       bool // color failures on the error writer
	Suggest     bool // include "did you mean" hints for unknown verbs
	StopOnError bool // end Run at the first failed command
}

// Session drives one Directory from a stream of command lines.
type Session struct {
	ID     string
	dir    *directory.Directory
	out    io.Writer
	errOut io.Writer
	log    logger.Logger
	opts   Options

	line    int
	summary models.SessionSummary
	started time.Time
	exited  bool
}

// New creates a Session over dir. A nil dir starts an empty directory and
// a nil log discards events.
func New(dir *directory.Directory, out, errOut io.Writer, log logger.Logger, opts Options) *Session {
	if dir == nil {
		dir = directory.New()
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = out
	}

	id := uuid.NewString()
	return &Session{
		ID:      id,
		dir:     dir,
		out:     out,
		errOut:  errOut,
		log:     log,
		opts:    opts,
		started: time.Now(),
		summary: models.SessionSummary{SessionID: id, Source: opts.Source},
	}
}

// Directory returns the directory owned by the session.
func (s *Session) Directory() *directory.Directory {
	return s.dir
}

// Exited reports whether an Exit command has been executed.
func (s *Session) Exited() bool {
	return s.exited
}

// Execute parses and runs a single command line without printing anything.
// The returned error is the recoverable failure also stored in the result.
func (s *Session) Execute(line string) (models.CommandResult, error) {
	s.line++
	start := time.Now()

	cmd, err := command.Parse(line)
	result := models.CommandResult{
		LineNumber: s.line,
		Raw:        cmd.Raw,
		Verb:       cmd.Verb.String(),
	}
	if err == nil {
		result.Output, err = s.dispatch(cmd)
	}

	switch {
	case err != nil:
		result.Status = models.StatusFailed
		result.Error = s.decorate(err)
	case cmd.Verb == command.VerbExit:
		result.Status = models.StatusExit
		s.exited = true
	default:
		result.Status = models.StatusOK
	}
	result.Duration = time.Since(start)

	s.record(result)
	return result, result.Error
}

// dispatch applies cmd to the directory and returns the lines to show.
func (s *Session) dispatch(cmd command.Command) ([]string, error) {
	args := cmd.Args
	switch cmd.Verb {
	case command.VerbAdd:
		if err := s.dir.Add(args[0], args[1]); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("Added %s to %s.", args[0], args[1])}, nil
	case command.VerbRemove:
		if err := s.dir.Remove(args[0], args[1]); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("Removed %s from %s.", args[0], args[1])}, nil
	case command.VerbMove:
		if err := s.dir.Move(args[0], args[1], args[2]); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("Moved %s from %s to %s.", args[0], args[1], args[2])}, nil
	case command.VerbRename:
		if err := s.dir.Rename(args[0], args[1], args[2]); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("Renamed %s to %s in %s.", args[0], args[2], args[1])}, nil
	case command.VerbPrint:
		return s.dir.Print(args[0])
	case command.VerbHelp:
		return strings.Split(command.HelpText(), "\n"), nil
	case command.VerbExit:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %s", command.ErrUnknownCommand, cmd.Verb)
}

// decorate drops the verb suggestion when hints are disabled.
func (s *Session) decorate(err error) error {
	var parseErr *command.ParseError
	if !s.opts.Suggest && errors.As(err, &parseErr) && parseErr.Suggestion != command.VerbUnknown {
		stripped := *parseErr
		stripped.Suggestion = command.VerbUnknown
		return &stripped
	}
	return err
}

func (s *Session) record(result models.CommandResult) {
	s.summary.Commands++
	if result.Failed() {
		s.summary.Failures++
		s.summary.Failed = append(s.summary.Failed, result)
	}
	s.log.LogCommand(result)
}

// readResult is one ReadString outcome handed back to Run.
type readResult struct {
	text string
	err  error
}

// Run reads lines from r until EOF, Exit or ctx is cancelled. Blank lines
// and lines starting with "#" are skipped. Failed commands are reported on
// the error writer and the loop continues; only read errors, cancellation
// and ErrStopped under StopOnError are returned.
//
// Each read runs in its own goroutine so a cancelled ctx ends Run even while
// r is blocked (an idle terminal). Only one read is in flight at a time.
func (s *Session) Run(ctx context.Context, r io.Reader) (models.SessionSummary, error) {
	s.log.LogSessionStart(s.ID, s.opts.Source)
	reader := bufio.NewReader(r)
	results := make(chan readResult, 1)

	var runErr error
loop:
	for !s.exited {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		s.prompt()
		go func() {
			text, err := reader.ReadString('\n')
			results <- readResult{text: text, err: err}
		}()

		var res readResult
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
			break loop
		case res = <-results:
		}

		if res.text != "" {
			s.summary.Lines++
			if stop := s.handleLine(res.text); stop != nil {
				runErr = stop
				break
			}
		}
		if res.err == io.EOF {
			// input closed by the same interrupt that cancelled ctx
			runErr = ctx.Err()
			break
		}
		if res.err != nil {
			runErr = fmt.Errorf("failed to read input: %w", res.err)
			break
		}
	}

	summary := s.Summary()
	s.log.LogSummary(summary)
	return summary, runErr
}

// handleLine executes and prints one raw input line.
func (s *Session) handleLine(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		s.line++
		return nil
	}

	result, err := s.Execute(trimmed)
	if err != nil {
		s.printError(err)
		if s.opts.StopOnError {
			return fmt.Errorf("%w: line %d: %v", ErrStopped, result.LineNumber, err)
		}
		return nil
	}

	s.printResult(result)
	return nil
}

func (s *Session) prompt() {
	if s.opts.ShowPrompt && s.opts.Prompt != "" {
		fmt.Fprint(s.out, s.opts.Prompt)
	}
}

func (s *Session) printResult(result models.CommandResult) {
	if result.Verb == command.VerbPrint.String() && len(result.Output) == 0 {
		fmt.Fprintln(s.out, "(no employees)")
		return
	}
	for _, line := range result.Output {
		fmt.Fprintln(s.out, line)
	}
}

func (s *Session) printError(err error) {
	if s.opts.Color {
		color.New(color.FgRed).Fprintf(s.errOut, "error: %v\n", err)
		return
	}
	fmt.Fprintf(s.errOut, "error: %v\n", err)
}

// Summary returns the running totals for the session.
func (s *Session) Summary() models.SessionSummary {
	summary := s.summary
	summary.Failed = append([]models.CommandResult(nil), s.summary.Failed...)
	summary.Employees = s.dir.Len()
	summary.Departments = len(s.dir.Departments())
	summary.Duration = time.Since(s.started)
	return summary
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
