package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

type rootOptions struct {
	output  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "attrkit",
		Short:         "Inspect typed-attribute declarations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			switch opts.output {
			case outputText, outputYAML:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want %s or %s)", opts.output, outputText, outputYAML)
			}
		},
	}

	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "Output format: text or yaml")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log operation definitions to stderr")

	root.AddCommand(newDescribeCmd(opts), newSignatureCmd(opts))

	return root
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
