package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/electa-app/electa/internal/rules"
)

// policyCmd represents the policy command.
var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Print the active scoring policy",
	Long: `Prints the rule table, orbs and project profiles as YAML, with
the SHA-256 hash that identifies this exact policy in persisted scans.

Example:
  go run ./cmd/electa policy`,
	RunE: runPolicy,
}

func init() {
	rootCmd.AddCommand(policyCmd)
}

func runPolicy(cmd *cobra.Command, args []string) error {
	policy := rules.Snapshot()

	hash, err := policy.Hash()
	if err != nil {
		return fmt.Errorf("hash policy: %w", err)
	}
	out, err := policy.YAML()
	if err != nil {
		return err
	}

	fmt.Printf("# policy hash: %s\n", hash)
	fmt.Print(string(out))
	return nil
}
