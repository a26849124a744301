package main

import (
	"os"

	"github.com/wonny/noliquid/backend/cmd/noliquid/commands"
)

// main is the entry point for the NoLiquid CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/noliquid [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
