package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for staffdir
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staffdir",
		Short: "In-memory employee directory shell and line search tool",
		Long: `staffdir keeps an in-memory directory of employees grouped by department.

Commands are typed one per line in a small language:
  Add <name> to <department>
  Remove <name> from <department>
  Move <name> from <department> to <department>
  Rename <name> in <department> to <new name>
  Print [<department>]

Use "staffdir shell" for an interactive session, "staffdir run" to execute
command scripts and "staffdir search" to find lines in a text file.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: $STAFFDIR_HOME/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Console log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().String("log-dir", "", "Write session logs to this directory")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(NewShellCommand())
	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewSearchCommand())

	return cmd
}
