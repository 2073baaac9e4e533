// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/cvparseproj/cvparse-mcp/internal/pipeline"
	"github.com/cvparseproj/cvparse-mcp/internal/tool"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the CV tools over MCP on stdio",
		Long:  "Start an MCP server on stdin/stdout exposing the parse_cv_text and parse_cv_file tools.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}

			server := tool.NewServer(pipeline.New(cfg, logger), version)
			logger.Info().Str("version", version).Msg("serving MCP over stdio")
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
