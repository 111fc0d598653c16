// ABOUTME: CLI command to record a dream through the full pipeline
// ABOUTME: Analysis, illustration, optional restyle, then save to the journal
package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oniromante/oniromante/internal/journal"
	"github.com/oniromante/oniromante/internal/models"
)

var (
	dreamFile   string
	dreamStyle  string
	dreamReview bool
)

// NewDreamCmd creates the dream command.
func NewDreamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dream [text]",
		Short: "Record a dream",
		Long: `Record a dream in your own words.

The report is analyzed by the dream mentor, illustrated in the chosen
art style and saved to the journal. With --review you can regenerate
the illustration in other styles before saving.

Examples:
  oniromante dream "Sonhei que voava sobre o oceano"
  oniromante dream --file relato.txt --style watercolor
  oniromante dream --review "Sonhei com um labirinto de espelhos"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDream,
	}

	cmd.Flags().StringVar(&dreamFile, "file", "", "Read the dream report from a file")
	cmd.Flags().StringVar(&dreamStyle, "style", "surreal", "Art style: surreal, fantasy, watercolor, cyberpunk, minimalist, oil")
	cmd.Flags().BoolVar(&dreamReview, "review", false, "Review and optionally restyle the illustration before saving")

	return cmd
}

func runDream(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Get the dream text
	var text string
	if dreamFile != "" {
		data, err := os.ReadFile(dreamFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	} else if len(args) > 0 {
		text = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("no dream text provided")
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	s, backend, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = backend.Close() }()

	mgr := journal.NewManager(gen, s, cmdLogger())
	if err := mgr.SetStyle(models.ArtStyle(dreamStyle)); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "🌙 Interpreting your dream...")
	}

	if err := mgr.Submit(cmd.Context(), text); err != nil {
		return err
	}

	result := mgr.Result()
	printAnalysis(cmd, result)

	if dreamReview {
		if err := reviewLoop(cmd, mgr); err != nil {
			return err
		}
	}

	entry, err := mgr.Commit()
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved dream %s: %s\n", entry.ID, entry.Title)
	}
	return nil
}

func printAnalysis(cmd *cobra.Command, result *models.AnalysisResult) {
	out := cmd.OutOrStdout()

	title := result.Title
	if title == "" {
		title = journal.DefaultTitle
	}
	fmt.Fprintf(out, "\n✨ %s\n", title)
	if result.Summary != "" {
		fmt.Fprintf(out, "%s\n", result.Summary)
	}
	if len(result.Symbols) > 0 {
		fmt.Fprintf(out, "Symbols:  %s\n", strings.Join(result.Symbols, ", "))
	}
	if len(result.Emotions) > 0 {
		fmt.Fprintf(out, "Emotions: %s\n", strings.Join(result.Emotions, ", "))
	}
	if result.IsNightmare {
		fmt.Fprintln(out, "⚠ Marked as nightmare")
	}
	if result.Analysis != nil {
		if result.Analysis.Spiritual != "" {
			fmt.Fprintf(out, "\nSpiritual:     %s\n", result.Analysis.Spiritual)
		}
		if result.Analysis.Psychological != "" {
			fmt.Fprintf(out, "Psychological: %s\n", result.Analysis.Psychological)
		}
		if result.Analysis.EmotionalAlert != "" {
			fmt.Fprintf(out, "Alert:         %s\n", result.Analysis.EmotionalAlert)
		}
	}
}

// reviewLoop lets the user restyle the illustration before saving.
func reviewLoop(cmd *cobra.Command, mgr *journal.Manager) error {
	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	for {
		fmt.Fprintf(out, "\nIllustration style: %s (image %s)\n", mgr.Style(), presenceOf(mgr.ImageURL()))
		fmt.Fprint(out, "Restyle? Enter a style name, or press Enter to save: ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		choice := strings.TrimSpace(line)
		if choice == "" {
			return nil
		}

		if err := mgr.RegenerateImage(cmd.Context(), models.ArtStyle(choice)); err != nil {
			fmt.Fprintf(out, "✗ %v\n", err)
			continue
		}
		fmt.Fprintf(out, "✓ Regenerated in %s style\n", choice)
	}
}

func presenceOf(url string) string {
	if url == "" {
		return "unavailable"
	}
	return "ready"
}
