// ABOUTME: CLI command to produce a social caption for a saved dream
// ABOUTME: Prints the caption and copies it to the clipboard
package commands

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/oniromante/oniromante/internal/journal"
)

var shareNoCopy bool

// NewShareCmd creates the share command.
func NewShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share <id>",
		Short: "Get a shareable caption for a dream",
		Long: `Produce a short social caption for a saved dream.

Uses the caption generated at analysis time when one exists, otherwise
composes one from the title and theme. The caption is copied to the
clipboard unless --no-copy is given.

Examples:
  oniromante share dream_20260827_223000_a1b2c3d4
  oniromante share --no-copy dream_20260827_223000_a1b2c3d4`,
		Args: cobra.ExactArgs(1),
		RunE: runShare,
	}

	cmd.Flags().BoolVar(&shareNoCopy, "no-copy", false, "Print only, skip the clipboard")

	return cmd
}

func runShare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, backend, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = backend.Close() }()

	entry := s.FindDream(args[0])
	if entry == nil {
		return fmt.Errorf("no dream with id %q", args[0])
	}

	caption := journal.ShareCaption(entry)
	fmt.Fprintln(cmd.OutOrStdout(), caption)

	if !shareNoCopy {
		if err := clipboard.WriteAll(caption); err != nil {
			if verbose {
				fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
			}
		} else if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "\n✓ Copied to clipboard")
		}
	}
	return nil
}
