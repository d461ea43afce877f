package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/electa-app/electa/internal/astro"
	"github.com/electa-app/electa/internal/contracts"
	"github.com/electa-app/electa/internal/ephemeris"
	"github.com/electa-app/electa/internal/scanner"
	"github.com/electa-app/electa/internal/scoring"
	"github.com/electa-app/electa/pkg/config"
	"github.com/electa-app/electa/pkg/logger"
)

// scanCmd represents the scan command.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Rate a window of dates for a project",
	Long: `Rates every day of a calendar window and prints them ranked.

Example:
  go run ./cmd/electa scan --project panaderia --type negocio --from 2026-03-01 --to 2026-03-31
  go run ./cmd/electa scan --project contrato-x --type contrato --from 2026-04-01 --to 2026-04-15 --explain`,
	RunE: runScan,
}

var (
	scanProject string
	scanType    string
	scanFrom    string
	scanTo      string
	scanLat     float64
	scanLon     float64
	scanExplain bool
)

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanProject, "project", "", "project name")
	scanCmd.Flags().StringVar(&scanType, "type", "otro", "project type (negocio|tienda|contrato|inversion|lanzamiento|sociedad|web|otro)")
	scanCmd.Flags().StringVar(&scanFrom, "from", "", "window start (YYYY-MM-DD)")
	scanCmd.Flags().StringVar(&scanTo, "to", "", "window end (YYYY-MM-DD)")
	scanCmd.Flags().Float64Var(&scanLat, "lat", 0, "observer latitude (defaults to configured location)")
	scanCmd.Flags().Float64Var(&scanLon, "lon", 0, "observer longitude (defaults to configured location)")
	scanCmd.Flags().BoolVar(&scanExplain, "explain", false, "print the triggered rules per day")

	scanCmd.MarkFlagRequired("project")
	scanCmd.MarkFlagRequired("from")
	scanCmd.MarkFlagRequired("to")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	from, err := time.Parse(contracts.DateLayout, scanFrom)
	if err != nil {
		return fmt.Errorf("invalid --from date: %w", err)
	}
	to, err := time.Parse(contracts.DateLayout, scanTo)
	if err != nil {
		return fmt.Errorf("invalid --to date: %w", err)
	}

	lat, lon := cfg.Location.Latitude, cfg.Location.Longitude
	if cmd.Flags().Changed("lat") {
		lat = scanLat
	}
	if cmd.Flags().Changed("lon") {
		lon = scanLon
	}

	eph, err := ephemeris.New(cfg)
	if err != nil {
		return fmt.Errorf("load ephemeris: %w", err)
	}
	defer eph.Close()

	sc := scanner.New(astro.NewCalculator(eph), scoring.NewEngine(), log)

	projectType := contracts.ParseProjectType(scanType)
	results, err := sc.Scan(cmd.Context(), scanner.Request{
		ProjectName: scanProject,
		ProjectType: projectType,
		From:        from,
		To:          to,
		Latitude:    lat,
		Longitude:   lon,
		UTCOffset:   cfg.Location.UTCOffset,
	})
	if err != nil {
		return err
	}

	fmt.Printf("=== %s (%s) %s .. %s ===\n\n",
		scanProject, projectType.Description(), scanFrom, scanTo)

	for _, r := range results {
		if r.Unratable {
			fmt.Printf("  %s  %-9s  unratable: %s\n", r.Date, r.Weekday, r.Error)
			continue
		}

		fmt.Printf("  %s  %-9s  %3d  %s\n", r.Date, r.Weekday, r.Score, r.Level)
		if len(r.BestHours) > 0 {
			fmt.Printf("      best hours: %v\n", r.BestHours)
		}
		if scanExplain {
			for _, f := range r.Factors {
				fmt.Printf("      %+6.1f  %s\n", f.Points, f.Text)
			}
		}
	}

	return nil
}
