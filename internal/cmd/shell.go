package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/staffdir/internal/command"
	"github.com/harrison/staffdir/internal/directory"
	"github.com/harrison/staffdir/internal/report"
	"github.com/harrison/staffdir/internal/session"
)

// NewShellCommand creates the shell command
func NewShellCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive directory session",
		Long: `Read directory commands from stdin, one per line, until Exit or end of input.

The prompt is only shown when stdin is a terminal, so commands can also be
piped in:

  printf 'Add Sally to Engineering\nPrint\n' | staffdir shell

` + command.HelpText(),
		Args: cobra.NoArgs,
		RunE: runShell,
	}

	cmd.Flags().String("report", "", "Write the final directory to this YAML file")

	return cmd
}

func runShell(cmd *cobra.Command, args []string) error {
	env, err := setupEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	reportPath, _ := cmd.Flags().GetString("report")

	in := cmd.InOrStdin()
	interactive := session.IsTerminal(in)
	out := cmd.OutOrStdout()

	if interactive {
		fmt.Fprintf(out, "staffdir %s\n", Version)
		fmt.Fprintln(out, "Type Help for the command list, Exit to quit.")
	}

	dir := directory.New()
	s := session.New(dir, out, cmd.ErrOrStderr(), env.log, session.Options{
		Source:     "stdin",
		Prompt:     env.cfg.Prompt,
		ShowPrompt: interactive,
		Color:      env.colorEnabled(),
		Suggest:    env.cfg.Suggest,
	})

	summary, err := s.Run(cmd.Context(), in)
	if interactive && !s.Exited() {
		// keep the shell prompt off the user's next line
		fmt.Fprintln(out)
	}
	if err != nil {
		return err
	}

	return env.writeReport(reportPath, dir, report.Meta{
		SessionID: summary.SessionID,
		Source:    summary.Source,
		Commands:  summary.Commands,
		Failures:  summary.Failures,
	})
}
