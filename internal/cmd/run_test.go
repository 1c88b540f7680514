package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/staffdir/internal/session"
)

func TestRunSharesDirectoryAcrossScripts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "01-hire.dir", "Add Sally to Engineering\nAdd Amir to Sales\n")
	writeFile(t, dir, "02-move.dir", "# reorg\nMove Sally from Engineering to Sales\nPrint Sales\n")

	out, stderr, err := executeCommand(t, "", "run", dir)

	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, out, "Moved Sally from Engineering to Sales.\n")
	assert.Contains(t, out, "Amir\nSally\n")
}

func TestRunMarkdownScript(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "onboarding.md", "# Onboarding\n\nSome prose.\n\n```staffdir\nAdd Sally to Engineering\nPrint\n```\n\n```go\nfmt.Println(\"ignored\")\n```\n")

	out, _, err := executeCommand(t, "", "run", path)

	require.NoError(t, err)
	assert.Equal(t, "Added Sally to Engineering.\nSally (Engineering)\n", out)
}

func TestRunReportsFailuresWithScriptLines(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.dir", "Add Sally to Sales\n\nRemove Bob from Sales\n")

	_, stderr, err := executeCommand(t, "", "run", path)

	require.NoError(t, err)
	assert.Contains(t, stderr, "1 command failed")
	assert.Contains(t, stderr, "line 3: Remove Bob from Sales")
}

func TestRunStopOnError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.dir", "Remove Bob from Sales\nAdd Sally to Sales\n")

	out, _, err := executeCommand(t, "", "run", "--stop-on-error", path)

	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrStopped)
	assert.NotContains(t, out, "Added Sally")
}

func TestRunRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "01-hire.dir", "Add Sally to Engineering\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "later"), 0755))
	writeFile(t, filepath.Join(dir, "later"), "move.dir", "Move Sally from Engineering to Sales\n")

	out, _, err := executeCommand(t, "", "run", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "Moved Sally")

	out, _, err = executeCommand(t, "", "run", "--recursive", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Moved Sally from Engineering to Sales.")
}

func TestRunNoScripts(t *testing.T) {
	_, _, err := executeCommand(t, "", "run", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no script files")
}

func TestRunRequiresArgs(t *testing.T) {
	_, _, err := executeCommand(t, "", "run")
	assert.Error(t, err)
}
