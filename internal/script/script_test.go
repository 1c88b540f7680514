package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/staffdir/internal/command"
)

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"team.dir":         FormatText,
		"team.TXT":         FormatText,
		"team":             FormatText,
		"runbook.md":       FormatMarkdown,
		"runbook.Markdown": FormatMarkdown,
		"team.yaml":        FormatUnknown,
	}
	for name, want := range tests {
		assert.Equal(t, want, DetectFormat(name), name)
	}
	assert.Equal(t, "markdown", FormatMarkdown.String())
}

func TestNewParserUnknown(t *testing.T) {
	_, err := NewParser(FormatUnknown)
	assert.ErrorContains(t, err, "unsupported format")
}

func TestTextParser(t *testing.T) {
	s, err := NewTextParser().Parse(strings.NewReader("Add Sally to Sales\r\n\n# note\nPrint"))
	require.NoError(t, err)
	assert.Equal(t, []Line{
		{Number: 1, Text: "Add Sally to Sales"},
		{Number: 2, Text: ""},
		{Number: 3, Text: "# note"},
		{Number: 4, Text: "Print"},
	}, s.Lines)
	assert.Equal(t, "Add Sally to Sales\n\n# note\nPrint\n", s.Text())
}

const runbook = "# Onboarding\n" +
	"\n" +
	"Hire the new team:\n" +
	"\n" +
	"```staffdir\n" +
	"Add Sally to Engineering\n" +
	"Add Amir to Sales\n" +
	"```\n" +
	"\n" +
	"This block is shell and is skipped:\n" +
	"\n" +
	"```sh\n" +
	"staffdir run onboarding.md\n" +
	"```\n" +
	"\n" +
	"```\n" +
	"Move Sally from Engineering to Sales\n" +
	"```\n"

func TestMarkdownParser(t *testing.T) {
	s, err := NewMarkdownParser().Parse(strings.NewReader(runbook))
	require.NoError(t, err)
	assert.Equal(t, []Line{
		{Number: 6, Text: "Add Sally to Engineering"},
		{Number: 7, Text: "Add Amir to Sales"},
		{Number: 17, Text: "Move Sally from Engineering to Sales"},
	}, s.Lines)
}

func TestMarkdownParserNoBlocks(t *testing.T) {
	s, err := NewMarkdownParser().Parse(strings.NewReader("# Nothing here\n\nJust prose.\n"))
	require.NoError(t, err)
	assert.Empty(t, s.Lines)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	mdPath := filepath.Join(dir, "onboarding.md")
	require.NoError(t, os.WriteFile(mdPath, []byte(runbook), 0644))
	s, err := ParseFile(mdPath)
	require.NoError(t, err)
	assert.Equal(t, mdPath, s.Path)
	assert.Equal(t, FormatMarkdown, s.Format)
	assert.Len(t, s.Lines, 3)

	_, err = ParseFile(filepath.Join(dir, "team.yaml"))
	assert.ErrorContains(t, err, "unknown script format")

	_, err = ParseFile(filepath.Join(dir, "missing.dir"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"02-moves.md", "01-hire.dir", "notes.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("Print\n"), 0644))
	}
	extra := filepath.Join(dir, "01-hire.dir")

	files, err := Discover([]string{dir, extra}, false)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "01-hire.dir", filepath.Base(files[0]))
	assert.Equal(t, "02-moves.md", filepath.Base(files[1]))

	_, err = Discover([]string{t.TempDir()}, false)
	assert.ErrorContains(t, err, "no script files")

	_, err = Discover([]string{filepath.Join(dir, "missing")}, false)
	assert.Error(t, err)
}

func TestDiscoverRecursive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "q1"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00-setup.dir"), []byte("Print\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "q1", "hires.dir"), []byte("Print\n"), 0644))

	files, err := Discover([]string{dir}, false)
	require.NoError(t, err)
	assert.Len(t, files, 1)

	files, err = Discover([]string{dir}, true)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "00-setup.dir", filepath.Base(files[0]))
	assert.Equal(t, filepath.Join(dir, "q1", "hires.dir"), files[1])
}

func TestDiscoverExtensionlessOnlyWhenNamed(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "onboarding")
	require.NoError(t, os.WriteFile(script, []byte("Add Sally to Sales\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "team.dir"), []byte("Print\n"), 0644))

	files, err := Discover([]string{dir}, false)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "team.dir", filepath.Base(files[0]))

	files, err = Discover([]string{script}, false)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, FormatText, DetectFormat(files[0]))
}

func TestValidate(t *testing.T) {
	s := &Script{
		Path: "team.dir",
		Lines: []Line{
			{Number: 1, Text: "# comment"},
			{Number: 2, Text: "Add Sally to Sales"},
			{Number: 3, Text: "Add Amir Sales"},
			{Number: 4, Text: ""},
			{Number: 5, Text: "hire Bob"},
		},
	}

	errs := Validate(s)
	require.Len(t, errs, 2)

	var lineErr *LineError
	require.True(t, errors.As(errs[0], &lineErr))
	assert.Equal(t, 3, lineErr.Line.Number)
	assert.ErrorIs(t, errs[0], command.ErrMalformed)
	assert.ErrorIs(t, errs[1], command.ErrUnknownCommand)
	assert.True(t, strings.HasPrefix(errs[1].Error(), "team.dir:5: "))
}
