package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/tagtrend/internal/model"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <char1> <char2>",
	Short: "Compare two characters head to head",
	Long: `Compare puts two characters side by side: lifetime totals, yearly
histories and a winner. The character with the strictly higher total
wins; equal totals are declared a tie.

Example:
  tagtrend compare hatsune_miku hakurei_reimu
  tagtrend compare "rem_(re:zero)" "ram_(re:zero)" --llm`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM report narration")
	compareCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	compareCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	cmp, err := engine.Compare(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("⚔️  %s vs %s\n\n", displayName(cmp.A.Tag), displayName(cmp.B.Tag))
	printSide(cmp.A)
	fmt.Println()
	printSide(cmp.B)
	fmt.Println()
	if cmp.Tie {
		fmt.Println("Result: tie")
	} else {
		fmt.Printf("Winner: %s\n", displayName(cmp.Winner))
	}

	subject := fmt.Sprintf("%s versus %s", displayName(cmp.A.Tag), displayName(cmp.B.Tag))
	narrateFacts(cmd.Context(), cfg, subject, compareFacts(cmp))
	return nil
}

func printSide(side model.ComparisonSide) {
	fmt.Printf("%s: %d artworks\n", displayName(side.Tag), side.TotalCount)
	for _, yc := range side.Yearly {
		fmt.Printf("  %d  %d\n", yc.Year, yc.Count)
	}
}

func compareFacts(cmp *model.Comparison) []string {
	facts := []string{
		fmt.Sprintf("%s appeared on %d artworks in total.", displayName(cmp.A.Tag), cmp.A.TotalCount),
		fmt.Sprintf("%s appeared on %d artworks in total.", displayName(cmp.B.Tag), cmp.B.TotalCount),
	}
	if cmp.Tie {
		facts = append(facts, "The two are exactly tied.")
	} else {
		facts = append(facts, fmt.Sprintf("%s has the higher total.", displayName(cmp.Winner)))
	}
	return facts
}
