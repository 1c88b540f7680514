package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harrison/staffdir/internal/directory"
)

var (
	// ErrMalformed is returned when a stop word is never found.
	ErrMalformed = errors.New("malformed command")
	// ErrUnknownCommand is returned when the first token is not a known verb.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArgument is shared with the directory so both layers report
	// an empty field the same way.
	ErrMissingArgument = directory.ErrMissingArgument
)

// ParseError describes why a command line could not be parsed.
type ParseError struct {
	Verb       Verb   // verb being parsed (VerbUnknown for unknown commands)
	Token      string // offending first token for unknown commands
	Field      string // grammar field that failed, e.g. "name" or "department"
	Expected   string // stop word that was expected (malformed only)
	Suggestion Verb   // nearest known verb, VerbUnknown when none
	Err        error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	var sb strings.Builder
	switch {
	case errors.Is(e.Err, ErrUnknownCommand):
		sb.WriteString(fmt.Sprintf("%v %q", e.Err, e.Token))
		if e.Suggestion != VerbUnknown {
			sb.WriteString(fmt.Sprintf(", did you mean %q?", e.Suggestion.String()))
		} else {
			sb.WriteString(", try Help")
		}
	case errors.Is(e.Err, ErrMalformed):
		sb.WriteString(fmt.Sprintf("%s: %v: expected %q after %s", e.Verb, e.Err, e.Expected, e.Field))
	default:
		sb.WriteString(fmt.Sprintf("%s: %v: %s", e.Verb, e.Err, e.Field))
	}
	return sb.String()
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
