package main

import (
	"os"

	"portfolio-ai/backend/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
