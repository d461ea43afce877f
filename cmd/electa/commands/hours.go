package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/electa-app/electa/internal/astro"
	"github.com/electa-app/electa/internal/contracts"
	"github.com/electa-app/electa/pkg/config"
)

// hoursCmd represents the hours command.
var hoursCmd = &cobra.Command{
	Use:   "hours [date]",
	Short: "Print the planetary hours of a date",
	Long: `Prints the 24 planetary hours of a date at the configured
observer location.

Example:
  go run ./cmd/electa hours 2026-03-15`,
	Args: cobra.ExactArgs(1),
	RunE: runHours,
}

func init() {
	rootCmd.AddCommand(hoursCmd)
}

func runHours(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	date, err := time.Parse(contracts.DateLayout, args[0])
	if err != nil {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %w", err)
	}

	// The hour table needs no ephemeris, only sunrise geometry.
	calc := astro.NewCalculator(nil)
	loc := cfg.Location
	hours, err := calc.PlanetaryHours(date, loc.Latitude, loc.Longitude)
	if err != nil {
		return err
	}

	fmt.Printf("=== Planetary hours %s (day of %s) ===\n\n",
		args[0], astro.DayRuler(date.Weekday()))

	for _, h := range hours {
		mark := " "
		if h.Favorable {
			mark = "*"
		}
		period := "night"
		if h.Daytime {
			period = "day"
		}
		fmt.Printf("  %s %2d  %s - %s  %-5s  %s\n",
			mark, h.Index,
			h.Start.Add(loc.UTCOffset).Format("15:04"),
			h.End.Add(loc.UTCOffset).Format("15:04"),
			period, h.Ruler)
	}

	fmt.Println("\n  * = favorable for launching")
	return nil
}
