package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tmorrison/skillcheck/internal/discovery"
	"github.com/tmorrison/skillcheck/internal/errors"
	"github.com/tmorrison/skillcheck/internal/logging"
)

// listInteractive holds the value of the --interactive flag.
var listInteractive bool

func init() {
	listCmd.Flags().BoolVarP(&listInteractive, "interactive", "i", false,
		"pick a skill with a fuzzy finder")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List skill descriptors under a directory",
	Long: `Walk a directory tree and list every SKILL.md descriptor found.

Descriptors that fail to parse are still listed, marked invalid, so
broken skills stay visible. With --interactive, a fuzzy finder lets
you pick a skill and prints its summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	scanner := discovery.NewScanner(logging.FromContext(cmd.Context()))
	entries, err := scanner.Scan(root)
	if err != nil {
		return errors.Wrap(err, "scanning for skills")
	}

	if listInteractive {
		return runInteractivePick(cmd.OutOrStdout(), entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No skills found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION\tPATH")
	for _, e := range entries {
		if e.ParseErr != nil {
			fmt.Fprintf(w, "(invalid)\t%s\t%s\n", truncate(e.ParseErr.Error(), 60), e.Path)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Skill.Name, truncate(e.Skill.Description, 60), e.Path)
	}
	return w.Flush()
}
