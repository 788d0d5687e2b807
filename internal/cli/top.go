package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var topN int

// topCmd represents the top command
var topCmd = &cobra.Command{
	Use:   "top <year>",
	Short: "Rank the most-tagged characters of a year",
	Long: `Top counts, for one calendar year, how many artworks each character
tag appeared on and prints the biggest counts first. Ties are broken
alphabetically so the ranking is stable.

Example:
  tagtrend top 2023
  tagtrend top 2023 --n 25`,
	Args: cobra.ExactArgs(1),
	RunE: runTop,
}

func init() {
	rootCmd.AddCommand(topCmd)

	topCmd.Flags().IntVar(&topN, "n", 0, "ranking size (default from config)")
}

func runTop(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[0], err)
	}

	cfg := loadConfig()
	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ranking, err := engine.TopCharacters(year, topN)
	if err != nil {
		return err
	}

	fmt.Printf("🏆 Top characters of %d\n\n", ranking.Year)
	if len(ranking.Entries) == 0 {
		fmt.Println("No character tags found for this year.")
		return nil
	}
	for i, entry := range ranking.Entries {
		fmt.Printf("%2d. %-40s %d artworks\n", i+1, displayName(entry.Tag), entry.Count)
	}
	return nil
}
