package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/staffdir/internal/script"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <script-or-dir>...",
		Short: "Check command scripts without running them",
		Long: `Parse every command in the given scripts and report lines that are not
valid commands. Nothing is executed, so errors that depend on directory
contents (unknown departments, duplicates) are not detected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}

	cmd.Flags().BoolP("recursive", "r", false, "Also check scripts in subdirectories")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	env, err := setupEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	recursive, _ := cmd.Flags().GetBool("recursive")
	files, err := script.Discover(args, recursive)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	invalid := 0
	for _, path := range files {
		s, err := script.ParseFile(path)
		if err != nil {
			return err
		}

		errs := script.Validate(s)
		if len(errs) == 0 {
			env.log.LogDebug(fmt.Sprintf("%s: %d lines ok", path, len(s.Lines)))
			continue
		}
		for _, e := range errs {
			red.Fprintf(out, "%v\n", e)
		}
		invalid += len(errs)
	}

	if invalid > 0 {
		return fmt.Errorf("%d invalid command(s) in %d script(s)", invalid, len(files))
	}

	green.Fprintf(out, "All %d script(s) valid\n", len(files))
	return nil
}
