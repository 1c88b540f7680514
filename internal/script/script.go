// Package script loads batches of directory commands from files.
//
// Plain text scripts hold one command per line. Markdown scripts keep
// their commands in fenced code blocks tagged "staffdir" (or untagged),
// so a runbook can mix prose with the commands it documents.
package script

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/staffdir/internal/command"
	"github.com/harrison/staffdir/internal/fileutil"
)

// Format represents the format of a script file
type Format int

const (
	// FormatUnknown represents an unknown or unsupported file format
	FormatUnknown Format = iota
	// FormatText represents a plain text script (.dir, .txt, no extension)
	FormatText
	// FormatMarkdown represents a Markdown (.md, .markdown) script
	FormatMarkdown
)

// String returns the string representation of the Format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// Extensions lists the file extensions Discover picks up.
var Extensions = []string{".dir", ".txt", ".md", ".markdown"}

// Line is one command line and its 1-based position in the source file.
type Line struct {
	Number int
	Text   string
}

// Script is a parsed command file.
type Script struct {
	Path   string
	Format Format
	Lines  []Line
}

// Text joins the script lines into newline-terminated input for a session.
func (s *Script) Text() string {
	var sb strings.Builder
	for _, l := range s.Lines {
		sb.WriteString(l.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Reader returns the script as session input.
func (s *Script) Reader() io.Reader {
	return strings.NewReader(s.Text())
}

// Parser is the interface that all script parsers must implement
type Parser interface {
	Parse(r io.Reader) (*Script, error)
}

// DetectFormat detects the script format based on file extension
//   - .md, .markdown -> FormatMarkdown
//   - .dir, .txt, none -> FormatText
//   - all others -> FormatUnknown
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".dir", ".txt", "":
		return FormatText
	default:
		return FormatUnknown
	}
}

// NewParser creates a new parser instance for the specified format
func NewParser(format Format) (Parser, error) {
	switch format {
	case FormatText:
		return NewTextParser(), nil
	case FormatMarkdown:
		return NewMarkdownParser(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
}

// ParseFile detects the format of path, opens it and parses it.
func ParseFile(path string) (*Script, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unknown script format: %s (supported: .dir, .txt, .md, .markdown)", path)
	}

	parser, err := NewParser(format)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer file.Close()

	s, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	s.Path = path
	s.Format = format
	return s, nil
}

// Discover expands paths into script files. Directories contribute the files
// matching Extensions in sorted order, descending into subdirectories when
// recursive is set. Files named directly are kept as given, so an
// extension-less script has to be named explicitly; a directory scan never
// picks one up.
func Discover(paths []string, recursive bool) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		candidates := []string{path}
		if info.IsDir() {
			result, err := fileutil.ScanDirectory(path, fileutil.ScanOptions{Extensions: Extensions, Recursive: recursive})
			if err != nil {
				return nil, err
			}
			candidates = result.Files
		}

		for _, c := range candidates {
			abs, err := filepath.Abs(c)
			if err != nil {
				return nil, fmt.Errorf("failed to get absolute path for %s: %w", c, err)
			}
			if !seen[abs] {
				seen[abs] = true
				files = append(files, abs)
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no script files (%s) found", strings.Join(Extensions, ", "))
	}
	return files, nil
}

// LineError reports a script line that does not parse as a command.
type LineError struct {
	Path string
	Line Line
	Err  error
}

// Error implements the error interface for LineError.
func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line.Number, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *LineError) Unwrap() error {
	return e.Err
}

// Validate parses every command in s without executing it.
// Blank lines and "#" comments are ignored.
func Validate(s *Script) []error {
	var errs []error
	for _, l := range s.Lines {
		trimmed := strings.TrimSpace(l.Text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if _, err := command.Parse(trimmed); err != nil {
			errs = append(errs, &LineError{Path: s.Path, Line: l, Err: err})
		}
	}
	return errs
}
