package main

import (
	"fmt"
	"os"

	"github.com/dnd-it/action-workflow-files/internal/inputs"
	"github.com/dnd-it/action-workflow-files/internal/outputs"
	"github.com/dnd-it/action-workflow-files/internal/pathglob"
	"github.com/dnd-it/action-workflow-files/workflow"
)

// runAction writes everything configured through the action inputs.
func runAction(cfg *inputs.Config, w *workflow.Writer, log *outputs.Logger) error {
	if len(cfg.Outputs) > 0 {
		log.LogGroup("Outputs")
		for _, e := range cfg.Outputs {
			log.LogInfo(fmt.Sprintf("  %s", e.Key))
		}
		if err := w.SetOutputMapping(cfg.Outputs); err != nil {
			log.LogEndGroup()
			return fmt.Errorf("write outputs: %w", err)
		}
		log.LogEndGroup()
	}

	if len(cfg.Env) > 0 {
		log.LogGroup("Environment")
		for _, e := range cfg.Env {
			log.LogInfo(fmt.Sprintf("  %s", e.Key))
		}
		if err := w.SetEnvMapping(cfg.Env); err != nil {
			log.LogEndGroup()
			return fmt.Errorf("write env: %w", err)
		}
		log.LogEndGroup()
	}

	if len(cfg.Paths) > 0 {
		paths := cfg.Paths
		if cfg.Glob {
			var err error
			if paths, err = pathglob.Expand(cfg.WorkingDirectory, cfg.Paths); err != nil {
				return fmt.Errorf("expand paths: %w", err)
			}
		}

		log.LogGroup("PATH")
		for _, p := range paths {
			log.LogInfo(fmt.Sprintf("  %s", p))
			if err := w.AddPath(p); err != nil {
				log.LogEndGroup()
				return fmt.Errorf("add path: %w", err)
			}
		}
		log.LogEndGroup()
	}

	if cfg.Summary != "" {
		if err := w.SummaryLine(cfg.Summary); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if cfg.SummaryFile != "" {
		data, err := os.ReadFile(cfg.SummaryFile)
		if err != nil {
			return fmt.Errorf("read file %s: %w", cfg.SummaryFile, err)
		}
		if err := w.Summary(data); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	log.LogInfo("Done!")
	return nil
}
