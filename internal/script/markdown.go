package script

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// CodeBlockLanguage tags fenced blocks holding commands.
const CodeBlockLanguage = "staffdir"

// MarkdownParser extracts commands from fenced code blocks.
type MarkdownParser struct {
	markdown goldmark.Markdown
}

// NewMarkdownParser creates a MarkdownParser.
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{
		markdown: goldmark.New(),
	}
}

// Parse walks the Markdown AST and collects the lines of every fenced code
// block whose info string is "staffdir" or empty. Other blocks are skipped.
func (p *MarkdownParser) Parse(r io.Reader) (*Script, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	s := &Script{Format: FormatMarkdown}
	doc := p.markdown.Parser().Parse(text.NewReader(source))

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		lang := strings.TrimSpace(string(block.Language(source)))
		if lang != "" && lang != CodeBlockLanguage {
			return ast.WalkSkipChildren, nil
		}

		lines := block.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			s.Lines = append(s.Lines, Line{
				Number: lineNumber(source, seg.Start),
				Text:   strings.TrimRight(string(seg.Value(source)), "\r\n"),
			})
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk markdown: %w", err)
	}

	return s, nil
}

// lineNumber converts a byte offset into a 1-based line number.
func lineNumber(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte("\n")) + 1
}
