package main

import (
	"os"

	"github.com/bitrise-io/bitrise-plugins-ai-commit/cmd"
	"github.com/bitrise-io/bitrise-plugins-ai-commit/logger"
	"github.com/fatih/color"
)

func main() {
	err := cmd.Execute()
	logger.Sync()

	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
