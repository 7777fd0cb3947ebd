package targetscope

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/targetscope/targetscope/pkg/loader"
	"github.com/targetscope/targetscope/pkg/scoring"
	"github.com/targetscope/targetscope/pkg/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [seed file]",
	Short: "Run the analytics suite over a seed file and print JSON",
	Long: `Load a seed document, run the opportunity, hub and repurposing
analytics over it, and print the combined report as JSON to stdout.

Useful for one-off analysis without standing up the HTTP server.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeLimit     int
	analyzeMinDegree int
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 10, "Maximum results per analytics section")
	analyzeCmd.Flags().IntVar(&analyzeMinDegree, "min-degree", 0, "Minimum hub degree (0 uses the default threshold)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	seed, err := loader.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load seed %s: %w", args[0], err)
	}

	snap, err := store.NewSnapshot(seed)
	if err != nil {
		return fmt.Errorf("failed to build snapshot: %w", err)
	}

	for _, w := range snap.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s %s: %s\n", w.Kind, w.EntityID, w.Message)
	}

	opportunities, _ := scoring.RankOpportunities(snap, analyzeLimit)
	candidates, _ := scoring.FindRepurposingCandidates(snap, analyzeLimit)

	report := map[string]any{
		"stats":         snap.Stats(),
		"opportunities": opportunities,
		"hubs":          scoring.FindHubs(snap, analyzeMinDegree),
		"repurposing":   candidates,
		"clusters":      scoring.DiseaseClusters(snap, 0),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
