package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/staffdir/internal/search"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\n"

func TestSearchCaseSensitive(t *testing.T) {
	path := writeFile(t, t.TempDir(), "poem.txt", poem)

	out, _, err := executeCommand(t, "", "search", "rUsT", path)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSearchIgnoreCaseFlag(t *testing.T) {
	path := writeFile(t, t.TempDir(), "poem.txt", poem)

	out, _, err := executeCommand(t, "", "search", "-i", "rUsT", path)

	require.NoError(t, err)
	assert.Equal(t, "Rust:\nTrust me.\n", out)
}

func TestSearchEnvForcesCaseInsensitive(t *testing.T) {
	path := writeFile(t, t.TempDir(), "poem.txt", poem)
	t.Setenv(search.CaseInsensitiveEnv, "")

	out, _, err := executeCommand(t, "", "search", "rUsT", path)

	require.NoError(t, err)
	assert.Equal(t, "Rust:\nTrust me.\n", out)
}

func TestSearchMissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "", "search", "duct", filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSearchRequiresTwoArgs(t *testing.T) {
	_, _, err := executeCommand(t, "", "search", "duct")
	assert.Error(t, err)
}
