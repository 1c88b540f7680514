package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := NewRootCommand()

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"shell", "run", "validate", "search"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	root := NewRootCommand()

	for _, name := range []string{"config", "log-level", "log-dir", "no-color"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing flag %q", name)
	}
	assert.True(t, root.SilenceUsage)
	assert.Equal(t, Version, root.Version)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := executeCommand(t, "", "--log-level", "loud", "shell")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestExplicitConfigMissingIsDefaults(t *testing.T) {
	out, _, err := executeCommand(t, "Print\n", "--config", "/nonexistent/staffdir.yaml", "shell")

	require.NoError(t, err)
	assert.Equal(t, "(no employees)\n", out)
}

func TestLogDirWritesSessionLog(t *testing.T) {
	logDir := t.TempDir()

	_, _, err := executeCommand(t, "Add Sally to Sales\n", "--log-dir", logDir, "shell")
	require.NoError(t, err)

	data, err := readLatestLog(logDir)
	require.NoError(t, err)
	assert.Contains(t, data, "Add Sally to Sales")
}

func TestLogLevelIsCaseInsensitive(t *testing.T) {
	_, _, err := executeCommand(t, "Print\n", "--log-level", "INFO", "shell")
	assert.NoError(t, err)
}

func TestConfigLoadedFromHome(t *testing.T) {
	home := t.TempDir()
	writeFile(t, home, "config.yaml", "suggest: false\n")

	_, stderr, err := executeCommandInHome(t, home, "add Bob to Sales\n", "shell")

	require.NoError(t, err)
	assert.Contains(t, stderr, `unknown command "add"`)
	assert.NotContains(t, stderr, "did you mean")
}
