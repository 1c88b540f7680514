// Package display renders user-facing warnings for the staffdir CLI.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // Related lines or files (optional)
	Suggestion string   // Action to take (optional)
}

// Render formats the warning. When colored is set the whole block is yellow.
func (w Warning) Render(colored bool) string {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	for i, item := range w.Items {
		b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, item))
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion: ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if colored {
		return color.New(color.FgYellow).Sprint(b.String())
	}
	return b.String()
}

// Display writes the warning to out.
func (w Warning) Display(out io.Writer, colored bool) {
	fmt.Fprint(out, w.Render(colored))
}

// FailedCommands builds the warning shown after a script had failures.
func FailedCommands(source string, items []string) Warning {
	noun := "commands"
	if len(items) == 1 {
		noun = "command"
	}
	return Warning{
		Title:      fmt.Sprintf("%d %s failed in %s", len(items), noun, source),
		Items:      items,
		Suggestion: "Run 'staffdir validate' to check scripts before executing them",
	}
}
