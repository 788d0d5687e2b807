package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var driverN int

// driversCmd represents the drivers command
var driversCmd = &cobra.Command{
	Use:   "drivers <year> <tag>",
	Short: "Find the characters driving a tag's popularity",
	Long: `Drivers ranks the character tags that co-occur most often with a
given tag in one year. Use it to see which characters are behind a
visual trait or theme, e.g. who wore the maid outfits of 2023.

Example:
  tagtrend drivers 2023 maid
  tagtrend drivers 2023 white_hair --n 10`,
	Args: cobra.ExactArgs(2),
	RunE: runDrivers,
}

func init() {
	rootCmd.AddCommand(driversCmd)

	driversCmd.Flags().IntVar(&driverN, "n", 0, "number of drivers (default from config)")
}

func runDrivers(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[0], err)
	}

	cfg := loadConfig()
	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	report, err := engine.TagDrivers(year, args[1], driverN)
	if err != nil {
		return err
	}

	fmt.Printf("🕵️  Who drove %q in %d?\n\n", displayName(report.Tag), report.Year)
	fmt.Printf("%q appeared on %d artworks that year.\n", displayName(report.Tag), report.TagCount)
	if len(report.Drivers) == 0 {
		fmt.Println("No character tags co-occurred with it.")
		return nil
	}
	fmt.Println()
	for i, entry := range report.Drivers {
		fmt.Printf("%2d. %-40s %d shared artworks\n", i+1, displayName(entry.Tag), entry.Count)
	}
	return nil
}
