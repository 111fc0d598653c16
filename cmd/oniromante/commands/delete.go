// ABOUTME: CLI command to delete a dream from the journal
// ABOUTME: Deletion is the only mutation a saved entry supports
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteYes bool

// NewDeleteCmd creates the delete command.
func NewDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved dream",
		Long: `Delete a dream from the journal by its id.

Examples:
  oniromante delete dream_20260827_223000_a1b2c3d4
  oniromante delete --yes dream_20260827_223000_a1b2c3d4`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, backend, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = backend.Close() }()

	id := args[0]
	entry := s.FindDream(id)
	if entry == nil {
		return fmt.Errorf("no dream with id %q", id)
	}

	if !deleteYes {
		fmt.Fprintf(cmd.OutOrStdout(), "This will delete %q (%s)\n", entry.Title, formatDate(entry.Date))
		fmt.Fprintln(cmd.OutOrStdout(), "Run with --yes to proceed")
		return nil
	}

	if err := s.DeleteDream(id); err != nil {
		return fmt.Errorf("deleting dream: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted dream %s\n", id)
	}
	return nil
}
