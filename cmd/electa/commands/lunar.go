package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/electa-app/electa/internal/astro"
	"github.com/electa-app/electa/internal/contracts"
	"github.com/electa-app/electa/internal/ephemeris"
	"github.com/electa-app/electa/pkg/config"
)

// lunarCmd represents the lunar command.
var lunarCmd = &cobra.Command{
	Use:   "lunar [date]",
	Short: "Print the Moon's state for a date",
	Long: `Prints the Moon's sign, phase, void-of-course and Via Combusta
state for a date at the configured observer location.

Example:
  go run ./cmd/electa lunar 2026-03-15`,
	Args: cobra.ExactArgs(1),
	RunE: runLunar,
}

func init() {
	rootCmd.AddCommand(lunarCmd)
}

func runLunar(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	date, err := time.Parse(contracts.DateLayout, args[0])
	if err != nil {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %w", err)
	}

	eph, err := ephemeris.New(cfg)
	if err != nil {
		return fmt.Errorf("load ephemeris: %w", err)
	}
	defer eph.Close()

	loc := cfg.Location
	inst := contracts.NewInstant(date, 12.0, loc.Latitude, loc.Longitude, loc.UTCOffset)

	info, err := astro.NewCalculator(eph).LunarInfo(inst)
	if err != nil {
		return err
	}

	fmt.Printf("=== Moon on %s ===\n\n", info.Date)
	fmt.Printf("  Sign:          %s %.1f°\n", info.Sign, info.SignDegree)
	fmt.Printf("  Phase:         %s (%.1f°)\n", info.PhaseName, info.PhaseAngle)
	fmt.Printf("  Waxing:        %v\n", info.Waxing)
	fmt.Printf("  Void of course: %v\n", info.VoidOfCourse)
	fmt.Printf("  Via Combusta:  %v\n", info.ViaCombusta)

	return nil
}
