package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextParser reads one command per line.
type TextParser struct{}

// NewTextParser creates a TextParser.
func NewTextParser() *TextParser {
	return &TextParser{}
}

// Parse reads every line of r, numbering from 1.
func (p *TextParser) Parse(r io.Reader) (*Script, error) {
	s := &Script{Format: FormatText}
	reader := bufio.NewReader(r)

	for n := 1; ; n++ {
		text, err := reader.ReadString('\n')
		if text != "" {
			s.Lines = append(s.Lines, Line{Number: n, Text: strings.TrimRight(text, "\r\n")})
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read content: %w", err)
		}
	}
	return s, nil
}
