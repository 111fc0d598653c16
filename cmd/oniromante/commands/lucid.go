// ABOUTME: CLI command for the lucid dreaming trainer
// ABOUTME: Per-day counters for reality checks, meditation and journaling
package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oniromante/oniromante/internal/models"
)

var (
	lucidCheck     bool
	lucidMeditated bool
	lucidJournaled bool
)

// NewLucidCmd creates the lucid command.
func NewLucidCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lucid",
		Short: "Track lucid dreaming practice",
		Long: `Track today's lucid dreaming training: reality checks performed,
meditation and journaling. Each day starts a fresh record.

Examples:
  oniromante lucid
  oniromante lucid --check
  oniromante lucid --meditated --journaled`,
		RunE: runLucid,
	}

	cmd.Flags().BoolVar(&lucidCheck, "check", false, "Record one reality check done now")
	cmd.Flags().BoolVar(&lucidMeditated, "meditated", false, "Mark today's meditation as done")
	cmd.Flags().BoolVar(&lucidJournaled, "journaled", false, "Mark today's journaling as done")

	return cmd
}

func runLucid(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, backend, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = backend.Close() }()

	today := models.Today(time.Now())
	progress := s.GetLucid(today)

	changed := false
	if lucidCheck {
		progress.AddRealityCheck()
		changed = true
	}
	if lucidMeditated {
		progress.DidMeditate = true
		changed = true
	}
	if lucidJournaled {
		progress.DidJournal = true
		changed = true
	}

	if changed {
		if err := s.PutLucid(progress); err != nil {
			return fmt.Errorf("saving progress: %w", err)
		}
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(progress, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Lucid training for %s\n", progress.Date)
	fmt.Fprintf(out, "Reality checks: %d\n", progress.RealityChecks)
	fmt.Fprintf(out, "Meditation:     %s\n", doneMark(progress.DidMeditate))
	fmt.Fprintf(out, "Journaling:     %s\n", doneMark(progress.DidJournal))
	return nil
}

func doneMark(done bool) string {
	if done {
		return "✓ done"
	}
	return "– pending"
}
