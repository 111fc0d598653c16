// ABOUTME: CLI command for the pre-sleep night energy ritual
// ABOUTME: Poetic goodnight message tuned to today's recorded mood
package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oniromante/oniromante/internal/models"
)

var nightMood string

// NewNightCmd creates the night command.
func NewNightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "night",
		Short: "Get a pre-sleep ritual for tonight",
		Long: `Generate tonight's energy: a poetic goodnight message, a short
breathing exercise and an intention phrase to repeat before sleep.

The ritual is tuned to today's recorded mood unless --mood overrides
it.

Examples:
  oniromante night
  oniromante night --mood ansioso`,
		RunE: runNight,
	}

	cmd.Flags().StringVar(&nightMood, "mood", "", "Override the mood the ritual is tuned to")

	return cmd
}

func runNight(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	mood := nightMood
	if mood == "" {
		s, backend, err := openStore(cfg)
		if err != nil {
			return err
		}
		status := s.GetStatus(models.Today(time.Now()))
		_ = backend.Close()

		mood = string(status.Mood)
		if mood == "" {
			mood = "neutro"
		}
	}

	energy, err := gen.GenerateNightEnergy(cmd.Context(), mood)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(energy, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n\n", themeIcon(energy.Theme), energy.Message)
	fmt.Fprintf(out, "Breathing: %s\n", energy.Breathing)
	fmt.Fprintf(out, "Intention: %s\n", energy.Intention)
	return nil
}

func themeIcon(theme models.NightTheme) string {
	switch theme {
	case models.ThemeStars:
		return "✨"
	case models.ThemeMoon:
		return "🌙"
	case models.ThemeVoid:
		return "🌌"
	default:
		return "🕯"
	}
}
