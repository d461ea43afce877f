// Package commands wires the CLI surface of the election engine.
package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "electa",
	Short: "Electional astrology scoring engine",
	Long: `Electa rates calendar dates for launching a venture using the
traditional electional rules (Robson, 1937) over computed planetary
positions.

Usage:
  go run ./cmd/electa [command]

Examples:
  go run ./cmd/electa api
  go run ./cmd/electa scan --project panaderia --type negocio --from 2026-03-01 --to 2026-03-31
  go run ./cmd/electa lunar 2026-03-15
  go run ./cmd/electa hours 2026-03-15
  go run ./cmd/electa policy`,
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.
func Execute() error {
	return rootCmd.Execute()
}
