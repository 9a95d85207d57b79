// Command workflow-files writes step outputs, environment variables, PATH
// entries and job summaries for GitHub Actions. Run without a subcommand it
// acts as a GitHub Action driven by INPUT_* variables.
package main

import (
	"os"

	"github.com/dnd-it/action-workflow-files/internal/outputs"
)

func main() {
	log := outputs.FromEnv()
	cmd := newRootCmd(os.Stdin, log)
	if err := cmd.Execute(); err != nil {
		log.LogError(err.Error())
		os.Exit(1)
	}
}
