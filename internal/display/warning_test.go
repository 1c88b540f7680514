package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarningRender(t *testing.T) {
	w := Warning{
		Title:      "2 commands failed in team.dir",
		Message:    "The directory was left unchanged by each failure",
		Items:      []string{"line 3: duplicate employee", "line 7: department not found"},
		Suggestion: "Fix the script",
	}

	want := "Warning: 2 commands failed in team.dir\n" +
		"    The directory was left unchanged by each failure\n" +
		"      1. line 3: duplicate employee\n" +
		"      2. line 7: department not found\n" +
		"    Suggestion: Fix the script\n"
	assert.Equal(t, want, w.Render(false))
}

func TestWarningDisplayTitleOnly(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "nothing to do"}.Display(&buf, false)
	assert.Equal(t, "Warning: nothing to do\n", buf.String())
}

func TestFailedCommands(t *testing.T) {
	w := FailedCommands("team.dir", []string{"line 3: boom"})
	assert.Equal(t, "1 command failed in team.dir", w.Title)
	assert.Len(t, w.Items, 1)
	assert.NotEmpty(t, w.Suggestion)
}
