// ABOUTME: CLI command to list saved dreams
// ABOUTME: Shows the journal newest-first as a table or JSON
package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listLimit int

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved dreams",
		Long: `List the dream journal, newest first.

Examples:
  oniromante list
  oniromante list --limit 5
  oniromante list --format json`,
		RunE: runList,
	}

	cmd.Flags().IntVar(&listLimit, "limit", 0, "Show at most this many entries (0 = all)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, backend, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = backend.Close() }()

	dreams := s.ListDreams()
	if listLimit > 0 && len(dreams) > listLimit {
		dreams = dreams[:listLimit]
	}

	if len(dreams) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No dreams recorded yet")
		}
		return nil
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(dreams, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DATE\tTITLE\tSYMBOLS\tID\n")
	fmt.Fprintf(w, "----\t-----\t-------\t--\n")
	for _, d := range dreams {
		title := d.Title
		if d.IsNightmare {
			title = "⚠ " + title
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			formatDate(d.Date),
			truncate(title, 30),
			truncate(strings.Join(d.Symbols, ", "), 30),
			d.ID)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d dream(s)\n", len(dreams))
	}
	return nil
}
