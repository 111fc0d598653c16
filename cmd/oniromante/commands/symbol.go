// ABOUTME: CLI command for the dream symbol encyclopedia
// ABOUTME: On-demand symbol lookups, never cached across sessions
package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oniromante/oniromante/internal/models"
)

// NewSymbolCmd creates the symbol command.
func NewSymbolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbol [term]",
		Short: "Look up a dream symbol",
		Long: `Look up the meaning of a symbol in dreams: its general,
psychological, spiritual and cultural readings plus practical advice.

Without a term, lists the common starting symbols.

Examples:
  oniromante symbol Água
  oniromante symbol "Queda"
  oniromante symbol --format json Cobra`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSymbol,
	}
}

func runSymbol(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Common symbols to explore:")
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", strings.Join(models.CommonSymbols, ", "))
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	def, err := gen.LookupSymbol(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔮 %s\n\n%s\n", def.Name, def.Meaning)
	if def.Psychological != "" {
		fmt.Fprintf(out, "\nPsychological: %s\n", def.Psychological)
	}
	if def.Spiritual != "" {
		fmt.Fprintf(out, "Spiritual:     %s\n", def.Spiritual)
	}
	if def.Cultural != "" {
		fmt.Fprintf(out, "Cultural:      %s\n", def.Cultural)
	}
	if def.Advice != "" {
		fmt.Fprintf(out, "\n💡 %s\n", def.Advice)
	}
	return nil
}
