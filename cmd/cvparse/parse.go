// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/cvparseproj/cvparse-mcp/internal/pipeline"
	"github.com/cvparseproj/cvparse-mcp/internal/report"
)

type parseOptions struct {
	format   string
	validate bool
	workers  int
}

func newParseCmd(root *rootOptions) *cobra.Command {
	opts := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Extract a structured record from a CV file",
		Long: "Read a PDF, PNG or JPEG CV and print its structured record. " +
			"Failures print {\"error\": message} and exit with status 1.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = opts.format
			}
			if cmd.Flags().Changed("validate") {
				cfg.Pipeline.ValidateRecord = opts.validate
			}
			if cmd.Flags().Changed("workers") {
				cfg.Pipeline.Workers = opts.workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			outcome := pipeline.New(cfg, logger).ProcessFile(cmd.Context(), args[0])
			if err := writeOutcome(cmd.OutOrStdout(), outcome, cfg.Output.Format, cfg.Output.Indent); err != nil {
				return err
			}
			if outcome.Failed() {
				return exitCode(1)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format: json, yaml or text")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "Check the record against the record schema")
	cmd.Flags().IntVar(&opts.workers, "workers", 1, "Sections extracted concurrently")
	return cmd
}

func writeOutcome(w io.Writer, outcome pipeline.Outcome, format string, indent bool) error {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(outcome)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "text":
		printer := report.NewPrinter(w)
		if outcome.Failed() {
			return printer.PrintError(outcome.Error)
		}
		return printer.PrintRecord(outcome.Record)
	default:
		var (
			out []byte
			err error
		)
		if indent {
			out, err = json.MarshalIndent(outcome, "", "  ")
		} else {
			out, err = json.Marshal(outcome)
		}
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
}
