package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dnd-it/action-workflow-files/internal/inputs"
	"github.com/dnd-it/action-workflow-files/internal/outputs"
	"github.com/dnd-it/action-workflow-files/internal/pathglob"
	"github.com/dnd-it/action-workflow-files/workflow"
)

func newRootCmd(stdin io.Reader, log *outputs.Logger) *cobra.Command {
	var prefix string

	writer := func(fallback string) *workflow.Writer {
		p := prefix
		if p == "" {
			p = fallback
		}
		return workflow.New(workflow.FilesFromEnv(p))
	}

	root := &cobra.Command{
		Use:           "workflow-files",
		Short:         "Write GitHub Actions outputs, env, path and summary files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := inputs.Parse()
			if err != nil {
				return err
			}
			return runAction(cfg, writer(cfg.Prefix), log)
		},
	}
	root.PersistentFlags().StringVar(&prefix, "prefix", "", "environment variable prefix (default GITHUB)")

	root.AddCommand(
		newSetCmd("set-output", "Append KEY=VALUE pairs to the output file", workflow.ChannelOutput, writer),
		newSetCmd("set-env", "Append KEY=VALUE pairs to the env file", workflow.ChannelEnv, writer),
		newAddPathCmd(writer, log),
		newSummaryCmd(stdin, writer),
	)
	return root
}

func newSetCmd(use, short string, ch workflow.Channel, writer func(string) *workflow.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   use + " KEY=VALUE...",
		Short: short,
		Long:  short + ". Each KEY may be given once per invocation.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := parsePairs(args)
			if err != nil {
				return err
			}
			return writer(workflow.DefaultPrefix).Set(ch, workflow.Named(entries...))
		},
	}
}

func newAddPathCmd(writer func(string) *workflow.Writer, log *outputs.Logger) *cobra.Command {
	var (
		glob bool
		root string
	)
	cmd := &cobra.Command{
		Use:   "add-path PATH...",
		Short: "Append directories to the path file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if glob {
				var err error
				if paths, err = pathglob.Expand(root, args); err != nil {
					return err
				}
			}
			w := writer(workflow.DefaultPrefix)
			for _, p := range paths {
				if err := w.AddPath(p); err != nil {
					return err
				}
				log.LogDebug(fmt.Sprintf("added %s to PATH", p))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&glob, "glob", false, "expand glob patterns to matching directories")
	cmd.Flags().StringVar(&root, "root", ".", "directory relative patterns are matched against")
	return cmd
}

func newSummaryCmd(stdin io.Reader, writer func(string) *workflow.Writer) *cobra.Command {
	var newline bool
	cmd := &cobra.Command{
		Use:   "summary [TEXT]",
		Short: "Append text to the step summary; reads stdin when TEXT is - or missing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 && args[0] != "-" {
				text = args[0]
			} else {
				data, err := io.ReadAll(stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}
			w := writer(workflow.DefaultPrefix)
			if newline {
				return w.SummaryLine(text)
			}
			return w.Summary(text)
		},
	}
	cmd.Flags().BoolVar(&newline, "newline", false, "append a trailing newline")
	return cmd
}

// parsePairs splits each argument on its first '='.
func parsePairs(args []string) ([]workflow.Entry, error) {
	entries := make([]workflow.Entry, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid argument '%s'. Must be KEY=VALUE", arg)
		}
		entries = append(entries, workflow.KV(key, value))
	}
	return entries, nil
}
