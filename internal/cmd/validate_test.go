package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValidScripts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.dir", "Add Sally to Sales\n# note\n\nPrint\n")
	writeFile(t, dir, "b.txt", "Remove Sally from Sales\n")

	out, _, err := executeCommand(t, "", "validate", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "All 2 script(s) valid")
}

func TestValidateReportsBadLines(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.dir", "Add Sally Sales\nPrint\nFire Bob\n")

	out, _, err := executeCommand(t, "", "validate", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 invalid command(s)")
	assert.Contains(t, out, path+":1:")
	assert.Contains(t, out, path+":3:")
	assert.NotContains(t, out, path+":2:")
}

func TestValidateDoesNotExecute(t *testing.T) {
	dir := t.TempDir()
	// Valid syntax even though Sales never exists.
	path := writeFile(t, dir, "remove.dir", "Remove Bob from Sales\n")

	_, _, err := executeCommand(t, "", "validate", path)
	assert.NoError(t, err)
}
