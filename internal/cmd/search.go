package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/staffdir/internal/search"
)

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query> <file>",
		Short: "Print the lines of a file that contain a query",
		Long: `Print every line of <file> containing <query>, in file order.

Matching is case-sensitive unless the CASE_INSENSITIVE environment variable
is set (to any value) or --ignore-case is given. An empty query matches every
line.`,
		Args: cobra.ExactArgs(2),
		RunE: runSearch,
	}

	cmd.Flags().BoolP("ignore-case", "i", false, "Match case-insensitively")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	env, err := setupEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	cfg, err := search.NewConfig(args, os.LookupEnv)
	if err != nil {
		return err
	}
	if ignoreCase, _ := cmd.Flags().GetBool("ignore-case"); ignoreCase {
		cfg.CaseSensitive = false
	}

	count, err := search.Run(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	env.log.LogDebug(fmt.Sprintf("search %q in %s: %d matching line(s)", cfg.Query, cfg.Path, count))
	return nil
}
