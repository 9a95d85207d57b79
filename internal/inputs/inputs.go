// Package inputs handles parsing GitHub Action inputs from environment variables.
package inputs

import (
	"fmt"
	"os"
	"strings"

	"github.com/bodrovis/lokalise-actions-common/v2/parsers"

	"github.com/dnd-it/action-workflow-files/workflow"
)

// Config holds all parsed input values.
type Config struct {
	Outputs          workflow.Mapping
	Env              workflow.Mapping
	Paths            []string
	Glob             bool
	WorkingDirectory string
	Summary          string
	SummaryFile      string
	Prefix           string
}

// Parse reads and validates inputs from environment variables.
func Parse() (*Config, error) {
	cfg := &Config{
		Summary:          getEnv("SUMMARY", ""),
		SummaryFile:      getEnv("SUMMARY_FILE", ""),
		Prefix:           getEnv("PREFIX", workflow.DefaultPrefix),
		WorkingDirectory: getEnv("WORKING_DIRECTORY", getEnvDefault("GITHUB_WORKSPACE", ".")),
		Paths:            parsers.ParseStringArrayEnv(inputKey("PATHS")),
	}

	glob, err := parsers.ParseBoolEnv(inputKey("GLOB"))
	if err != nil {
		return nil, fmt.Errorf("invalid value for 'glob' input; expected true or false")
	}
	cfg.Glob = glob

	if cfg.Outputs, err = ParseMapping(getEnv("OUTPUTS", "")); err != nil {
		return nil, fmt.Errorf("'outputs' input: %w", err)
	}
	if cfg.Env, err = ParseMapping(getEnv("ENV", "")); err != nil {
		return nil, fmt.Errorf("'env' input: %w", err)
	}

	if len(cfg.Outputs) == 0 && len(cfg.Env) == 0 && len(cfg.Paths) == 0 &&
		cfg.Summary == "" && cfg.SummaryFile == "" {
		return nil, fmt.Errorf("at least one of 'outputs', 'env', 'paths', 'summary' or 'summary_file' is required")
	}

	return cfg, nil
}

func inputKey(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func getEnv(name, defaultValue string) string {
	if v := os.Getenv(inputKey(name)); v != "" {
		return v
	}
	return defaultValue
}

func getEnvDefault(name, defaultValue string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultValue
}
