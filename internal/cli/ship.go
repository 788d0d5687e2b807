package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// shipCmd represents the ship command
var shipCmd = &cobra.Command{
	Use:   "ship <char1> <char2>",
	Short: "Measure how strongly two characters co-occur",
	Long: `Ship counts the artworks tagged with both characters and reports the
joint count relative to each character's own total. A high percentage
on one side means that character rarely appears without the other.

Example:
  tagtrend ship "rem_(re:zero)" "ram_(re:zero)"`,
	Args: cobra.ExactArgs(2),
	RunE: runShip,
}

func init() {
	rootCmd.AddCommand(shipCmd)
}

func runShip(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ship, err := engine.ShipDependency(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("❤️  %s × %s\n\n", displayName(ship.TagA), displayName(ship.TagB))
	fmt.Printf("Together on %d artworks\n\n", ship.JointCount)
	fmt.Printf("%-40s %d total, %.1f%% shared\n",
		displayName(ship.TagA), ship.TotalA, ship.PercentageA*100)
	fmt.Printf("%-40s %d total, %.1f%% shared\n",
		displayName(ship.TagB), ship.TotalB, ship.PercentageB*100)
	return nil
}
