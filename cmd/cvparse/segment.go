// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cvparseproj/cvparse-mcp/internal/pipeline"
	"github.com/cvparseproj/cvparse-mcp/internal/report"
)

func newSegmentCmd(root *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "segment <file>",
		Short: "Print the sections detected in a CV file",
		Long:  "Read a CV file and print each detected section with its lines, without extracting fields.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}

			doc, err := pipeline.New(cfg, logger).Segment(cmd.Context(), args[0])
			if err != nil {
				return errors.New(pipeline.Classify(err))
			}

			if asJSON {
				out, err := json.MarshalIndent(doc.Sections(), "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return err
			}
			return report.NewPrinter(cmd.OutOrStdout()).PrintDocument(doc)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the sections as JSON")
	return cmd
}
