// Package search finds the lines of a text body that contain a query.
package search

import (
	"strings"
)

// Query is a single search request.
type Query struct {
	Pattern       string
	CaseSensitive bool
}

// Search returns the lines of text containing query, in their original order.
// Lines are separated by "\n" and a trailing "\r" is dropped from each line.
// When caseSensitive is false both sides are lowercased for the comparison,
// but the original lines are returned. An empty query matches every line.
func Search(query, text string, caseSensitive bool) []string {
	if !caseSensitive {
		query = strings.ToLower(query)
	}

	results := make([]string, 0)
	for _, line := range splitLines(text) {
		candidate := line
		if !caseSensitive {
			candidate = strings.ToLower(line)
		}
		if strings.Contains(candidate, query) {
			results = append(results, line)
		}
	}
	return results
}

// Run executes q against text.
func (q Query) Run(text string) []string {
	return Search(q.Pattern, text, q.CaseSensitive)
}

// splitLines splits text into lines. A final newline does not start a new
// empty line, and an empty text has no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
