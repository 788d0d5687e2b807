package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/tagtrend/internal/model"
)

var statsMonths int

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <tag>",
	Short: "Show a character's popularity profile",
	Long: `Stats reports one character tag's lifetime total, peak month and
recent trend, plus a monthly history. The trend compares the latest
month against the same month a year earlier (or the recent average
when the history is short).

Example:
  tagtrend stats hatsune_miku
  tagtrend stats "rem_(re:zero)" --months 24
  tagtrend stats hatsune_miku --llm`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().IntVar(&statsMonths, "months", 12, "history months to print (0 = all)")

	statsCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM report narration")
	statsCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	statsCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	stats, err := engine.CharacterStats(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("📊 %s\n\n", displayName(stats.Tag))
	fmt.Printf("Total artworks: %d\n", stats.TotalCount)
	fmt.Printf("Peak month:     %s (%d artworks)\n", stats.PeakLabel, stats.PeakCount)
	fmt.Printf("Trend:          %s\n", stats.Trend)

	series := stats.Series
	if statsMonths > 0 && len(series) > statsMonths {
		series = series[len(series)-statsMonths:]
	}
	if len(series) > 0 {
		fmt.Println("\nMonthly history:")
		for _, point := range series {
			fmt.Printf("  %s  %d\n", point.Label, point.Count)
		}
	}

	narrateFacts(cmd.Context(), cfg, displayName(stats.Tag), statsFacts(stats))
	return nil
}

func statsFacts(stats *model.CharacterStats) []string {
	return []string{
		fmt.Sprintf("Appeared on %d artworks in total.", stats.TotalCount),
		fmt.Sprintf("Peaked in %s with %d artworks.", stats.PeakLabel, stats.PeakCount),
		fmt.Sprintf("Current trend: %s.", stats.Trend),
	}
}
