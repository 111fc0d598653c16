// ABOUTME: CLI command to show aggregate journal statistics
// ABOUTME: Totals, weekly and nightmare counts, rankings and the wrapped view
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/oniromante/oniromante/internal/stats"
)

// NewStatsCmd creates the stats command.
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dream journal statistics",
		Long: `Show aggregate statistics over the whole journal: totals, nightmare
and this-week counts, the top symbols and emotions, and the wrapped
retrospective once the journal holds more than two dreams.

Examples:
  oniromante stats
  oniromante stats --format json`,
		RunE: runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, backend, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = backend.Close() }()

	result := stats.ComputeStats(s.ListDreams(), time.Now())

	if outputFormat == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total dreams: %d\n", result.TotalDreams)
	fmt.Fprintf(out, "This week:    %d\n", result.ThisWeekCount)
	fmt.Fprintf(out, "Nightmares:   %d\n", result.NightmareCount)

	if len(result.TopSymbols) > 0 || len(result.TopEmotions) > 0 {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "\nTOP SYMBOLS\t\tTOP EMOTIONS\t\n")
		for i := 0; i < len(result.TopSymbols) || i < len(result.TopEmotions); i++ {
			symbol, emotion := "", ""
			symbolCount, emotionCount := "", ""
			if i < len(result.TopSymbols) {
				symbol = result.TopSymbols[i].Name
				symbolCount = fmt.Sprintf("%d", result.TopSymbols[i].Count)
			}
			if i < len(result.TopEmotions) {
				emotion = result.TopEmotions[i].Name
				emotionCount = fmt.Sprintf("%d", result.TopEmotions[i].Count)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", symbol, symbolCount, emotion, emotionCount)
		}
		w.Flush()
	}

	if result.Wrapped != nil {
		fmt.Fprintf(out, "\n🔮 Dream Wrapped\n")
		fmt.Fprintf(out, "Top symbol:  %s\n", result.Wrapped.TopSymbol)
		fmt.Fprintf(out, "Top emotion: %s\n", result.Wrapped.TopEmotion)
		fmt.Fprintf(out, "Theme:       %s\n", result.Wrapped.Theme)
		fmt.Fprintf(out, "Archetype:   %s\n", result.Wrapped.Archetype)
	}
	return nil
}
