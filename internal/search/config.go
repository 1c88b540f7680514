package search

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// CaseInsensitiveEnv forces case-insensitive search when present in the
// environment. Only presence is checked, not the value.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// ErrNotEnoughArgs is returned when the query or file path is missing.
var ErrNotEnoughArgs = errors.New("not enough arguments")

// Config holds one search invocation.
type Config struct {
	Query         string
	Path          string
	CaseSensitive bool
}

// NewConfig builds a Config from positional args (query, path).
// lookupEnv is usually os.LookupEnv.
func NewConfig(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	if len(args) < 2 {
		return nil, ErrNotEnoughArgs
	}

	caseSensitive := true
	if lookupEnv != nil {
		if _, set := lookupEnv(CaseInsensitiveEnv); set {
			caseSensitive = false
		}
	}

	return &Config{
		Query:         args[0],
		Path:          args[1],
		CaseSensitive: caseSensitive,
	}, nil
}

// Run reads the whole file at cfg.Path, writes each matching line to out and
// returns the number of matches. Read failures are returned wrapped.
func Run(cfg *Config, out io.Writer) (int, error) {
	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", cfg.Path, err)
	}

	q := Query{Pattern: cfg.Query, CaseSensitive: cfg.CaseSensitive}
	results := q.Run(string(data))
	for _, line := range results {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return 0, fmt.Errorf("failed to write results: %w", err)
		}
	}
	return len(results), nil
}
