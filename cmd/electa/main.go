package main

import (
	"os"

	"github.com/electa-app/electa/cmd/electa/commands"
)

// main is the entry point for the electa CLI: go run ./cmd/electa [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
