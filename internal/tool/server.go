// SPDX-License-Identifier: Apache-2.0

// Package tool exposes the CV pipeline as MCP tools.
package tool

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cvparseproj/cvparse-mcp/internal/pipeline"
)

// ServerName is the MCP implementation name.
const ServerName = "cvparse-mcp"

// NewServer creates an MCP server with every CV tool registered.
func NewServer(p *pipeline.Pipeline, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, nil)
	New(p).Register(server)
	return server
}
