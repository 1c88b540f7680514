package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/staffdir/internal/directory"
	"github.com/harrison/staffdir/internal/display"
	"github.com/harrison/staffdir/internal/models"
	"github.com/harrison/staffdir/internal/report"
	"github.com/harrison/staffdir/internal/script"
	"github.com/harrison/staffdir/internal/session"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script-or-dir>...",
		Short: "Execute directory command scripts",
		Long: `Execute one or more command scripts against a single, initially empty
directory. Scripts run in the order given; a directory contributes its script
files (.dir, .txt, .md, .markdown) in name order; --recursive includes
subdirectories. Extension-less scripts must be named explicitly.

Markdown scripts only run the fenced code blocks tagged "staffdir" or left
untagged.

Failed commands are reported and skipped. With --stop-on-error the first
failure ends the run with a non-zero exit code.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScripts,
	}

	cmd.Flags().String("report", "", "Write the final directory to this YAML file")
	cmd.Flags().Bool("stop-on-error", false, "Stop at the first failing command")
	cmd.Flags().BoolP("recursive", "r", false, "Also run scripts in subdirectories")

	return cmd
}

func runScripts(cmd *cobra.Command, args []string) error {
	env, err := setupEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	reportPath, _ := cmd.Flags().GetString("report")
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")
	recursive, _ := cmd.Flags().GetBool("recursive")

	files, err := script.Discover(args, recursive)
	if err != nil {
		return err
	}

	dir := directory.New()
	meta := report.Meta{Source: fmt.Sprintf("%d script(s)", len(files))}
	out := cmd.OutOrStdout()

	for _, path := range files {
		s, err := script.ParseFile(path)
		if err != nil {
			return err
		}

		sess := session.New(dir, out, cmd.ErrOrStderr(), env.log, session.Options{
			Source:      path,
			Color:       env.colorEnabled(),
			Suggest:     env.cfg.Suggest,
			StopOnError: stopOnError,
		})
		if meta.SessionID == "" {
			meta.SessionID = sess.ID
		}

		summary, runErr := sess.Run(cmd.Context(), s.Reader())
		meta.Commands += summary.Commands
		meta.Failures += summary.Failures

		if len(summary.Failed) > 0 && !errors.Is(runErr, session.ErrStopped) {
			display.FailedCommands(path, failedItems(s, summary.Failed)).Display(cmd.ErrOrStderr(), env.colorEnabled())
		}
		if runErr != nil {
			return fmt.Errorf("%s: %w", path, runErr)
		}
		if sess.Exited() {
			env.log.LogInfo(fmt.Sprintf("Exit in %s, skipping remaining scripts", path))
			break
		}
	}

	return env.writeReport(reportPath, dir, meta)
}

// failedItems maps session line numbers back to script line numbers.
func failedItems(s *script.Script, failed []models.CommandResult) []string {
	items := make([]string, 0, len(failed))
	for _, result := range failed {
		lineNo := result.LineNumber
		if lineNo >= 1 && lineNo <= len(s.Lines) {
			lineNo = s.Lines[lineNo-1].Number
		}
		items = append(items, fmt.Sprintf("line %d: %s: %v", lineNo, result.Raw, result.Error))
	}
	return items
}
