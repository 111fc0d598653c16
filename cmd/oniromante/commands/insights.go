// ABOUTME: CLI command for the day-cached daily insights
// ABOUTME: Generates once per calendar day, then reuses the stored record
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oniromante/oniromante/internal/cache"
	"github.com/oniromante/oniromante/internal/models"
)

// NewInsightsCmd creates the insights command.
func NewInsightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show today's daily insights",
		Long: `Show today's mystical insights: a motivation, lucky number and
color, and the word of the day.

Insights are generated once per calendar day; repeated calls on the
same day reuse the stored record, including across restarts.

Examples:
  oniromante insights
  oniromante insights --format json`,
		RunE: runInsights,
	}
}

func runInsights(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, backend, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = backend.Close() }()

	policy := cache.New(s)

	fetch, err := policy.ShouldFetch(cache.KindDailyInsights)
	if err != nil {
		return err
	}

	var insights *models.DailyInsights
	if fetch {
		gen, err := newGenerator(cfg)
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "✨ Consulting the stars...")
		}
		insights, err = gen.GenerateDailyInsights(cmd.Context())
		if err != nil {
			return err
		}
		if err := policy.RecordFetched(cache.KindDailyInsights, insights); err != nil {
			log := cmdLogger()
			log.Warn().Err(err).Msg("failed to cache daily insights")
		}
	} else {
		insights = policy.CachedInsights()
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(insights, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🌟 %s\n\n", insights.Motivation)
	fmt.Fprintf(out, "Lucky number: %d\n", insights.LuckyNumber)
	fmt.Fprintf(out, "Lucky color:  %s\n", insights.LuckyColor)
	fmt.Fprintf(out, "Word of day:  %s (%s)\n", insights.WordOfDay, insights.WordMeaning)
	return nil
}
