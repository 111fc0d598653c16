// ABOUTME: CLI command to show and update today's mood and sleep record
// ABOUTME: Partial updates merge into the existing daily status
package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oniromante/oniromante/internal/models"
)

var (
	statusMood  string
	statusSleep string
	statusNotes string
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show or update today's mood and sleep",
		Long: `Show or update today's mood and sleep record.

Without flags, prints the current record for today. Flags update only
the fields they name; the rest of the record is untouched.

Examples:
  oniromante status
  oniromante status --mood good --sleep fair
  oniromante status --notes "acordei às 3h da manhã"`,
		RunE: runStatus,
	}

	cmd.Flags().StringVar(&statusMood, "mood", "", "Today's mood: amazing, good, neutral, bad, awful")
	cmd.Flags().StringVar(&statusSleep, "sleep", "", "Last night's sleep: excellent, good, fair, poor, terrible")
	cmd.Flags().StringVar(&statusNotes, "notes", "", "Free-form sleep notes")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
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
	status := s.GetStatus(today)

	update := models.StatusUpdate{}
	changed := false
	if statusMood != "" {
		mood := models.Mood(statusMood)
		if !mood.Valid() {
			return fmt.Errorf("unknown mood %q", statusMood)
		}
		update.Mood = &mood
		changed = true
	}
	if statusSleep != "" {
		sleep := models.SleepQuality(statusSleep)
		if !sleep.Valid() {
			return fmt.Errorf("unknown sleep quality %q", statusSleep)
		}
		update.Sleep = &sleep
		changed = true
	}
	if cmd.Flags().Changed("notes") {
		update.SleepNotes = &statusNotes
		changed = true
	}

	if changed {
		status.Merge(update)
		if err := s.PutStatus(status); err != nil {
			return fmt.Errorf("saving status: %w", err)
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated status for %s\n", today)
		}
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Date:  %s\n", status.Date)
	fmt.Fprintf(cmd.OutOrStdout(), "Mood:  %s\n", orUnset(string(status.Mood)))
	fmt.Fprintf(cmd.OutOrStdout(), "Sleep: %s\n", orUnset(string(status.Sleep)))
	if status.SleepNotes != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Notes: %s\n", status.SleepNotes)
	}
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
