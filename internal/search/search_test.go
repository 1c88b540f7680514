package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape.\nTrust me."

func TestSearch(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		text          string
		caseSensitive bool
		want          []string
	}{
		{"one result", "duct", "Rust:\nsafe, fast, productive.\nPick three.", true, []string{"safe, fast, productive."}},
		{"case sensitive skips other case", "duct", poem, true, []string{"safe, fast, productive."}},
		{"case insensitive", "rUsT", poem, false, []string{"Rust:", "Trust me."}},
		{"upper query insensitive", "RUST", "Rust\nTrust me.\nOther", false, []string{"Rust", "Trust me."}},
		{"upper query sensitive", "RUST", "Rust\nTrust me.\nOther", true, []string{}},
		{"empty query matches all", "", "a\nb\nc", true, []string{"a", "b", "c"}},
		{"empty query matches all insensitive", "", "a\nb\nc", false, []string{"a", "b", "c"}},
		{"crlf line endings", "b", "a\r\nb\r\nab\r\n", true, []string{"b", "ab"}},
		{"trailing newline adds no line", "", "a\nb\n", true, []string{"a", "b"}},
		{"blank lines kept", "", "a\n\nb", true, []string{"a", "", "b"}},
		{"duplicates kept", "x", "x\ny\nx", true, []string{"x", "x"}},
		{"empty text", "", "", true, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.query, tt.text, tt.caseSensitive)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryRun(t *testing.T) {
	q := Query{Pattern: "three", CaseSensitive: true}
	assert.Equal(t, []string{"Pick three."}, q.Run(poem))
}
