// ABOUTME: CLI command for the daily oracle card draw
// ABOUTME: Deterministic per date, so the day's card never changes
package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oniromante/oniromante/internal/models"
	"github.com/oniromante/oniromante/internal/oracle"
)

// NewOracleCmd creates the oracle command.
func NewOracleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "oracle",
		Short: "Draw today's oracle card",
		Long: `Draw the oracle card for today. The draw is deterministic per
calendar day: asking again always shows the same card.

Examples:
  oniromante oracle
  oniromante oracle --format json`,
		RunE: runOracle,
	}
}

func runOracle(cmd *cobra.Command, args []string) error {
	card := oracle.Draw(models.Today(time.Now()))

	if outputFormat == "json" {
		data, err := json.MarshalIndent(card, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🃏 %s (%s)\n\n", card.Title, card.Element)
	fmt.Fprintf(out, "%s\n\n", card.Meaning)
	fmt.Fprintf(out, "Tonight: %s\n", card.Action)
	return nil
}
