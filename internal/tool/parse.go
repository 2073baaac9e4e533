// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cvparseproj/cvparse-mcp/internal/pipeline"
)

// MetadataParseCVText describes the parse_cv_text tool.
var MetadataParseCVText = &mcp.Tool{
	Name: "parse_cv_text",
	Description: "Segment the plain text of a CV into canonical sections and extract structured fields. " +
		"Contact, skills, experience, education and languages sections are parsed into typed values; " +
		"any other recognised section is returned verbatim under a snake_case key. " +
		"Keys appear only for sections found in the text, listed in document order in `keys`.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Plain text of the CV with its original line breaks",
			},
		},
	},
}

// MetadataParseCVFile describes the parse_cv_file tool.
var MetadataParseCVFile = &mcp.Tool{
	Name: "parse_cv_file",
	Description: "Read a CV from a local PDF, PNG or JPEG file and return the same structured record as parse_cv_text. " +
		"PDF pages without a text layer and image files are run through OCR. " +
		"Fails with one of: File not found, Unsupported file type, No text could be extracted.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"path"},
		"properties": map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "Path of the CV file on the server host (.pdf, .png, .jpg, .jpeg)",
			},
		},
	},
}

// InputParseCVText is the input for the ParseCVText tool.
type InputParseCVText struct {
	Content string `json:"content"`
}

// InputParseCVFile is the input for the ParseCVFile tool.
type InputParseCVFile struct {
	Path string `json:"path"`
}

// OutputParseCV is the output of both CV tools.
type OutputParseCV struct {
	// Record maps each output key to its extracted value.
	Record map[string]any `json:"record"`
	// Keys lists the record keys in document order.
	Keys []string `json:"keys"`
}

// Tools serves the CV tools over one pipeline.
type Tools struct {
	pipeline *pipeline.Pipeline
}

// New creates Tools backed by p.
func New(p *pipeline.Pipeline) *Tools {
	return &Tools{pipeline: p}
}

// Register adds every CV tool to server.
func (t *Tools) Register(server *mcp.Server) {
	mcp.AddTool(server, MetadataParseCVText, t.ParseCVText)
	mcp.AddTool(server, MetadataParseCVFile, t.ParseCVFile)
}

// ParseCVText structures CV text supplied by the client.
func (t *Tools) ParseCVText(ctx context.Context, _ *mcp.CallToolRequest, input InputParseCVText) (*mcp.CallToolResult, OutputParseCV, error) {
	return output(t.pipeline.ProcessText(ctx, input.Content))
}

// ParseCVFile structures a CV file read on the server host.
func (t *Tools) ParseCVFile(ctx context.Context, _ *mcp.CallToolRequest, input InputParseCVFile) (*mcp.CallToolResult, OutputParseCV, error) {
	if input.Path == "" {
		return nil, OutputParseCV{}, fmt.Errorf("path is required")
	}
	return output(t.pipeline.ProcessFile(ctx, input.Path))
}

func output(o pipeline.Outcome) (*mcp.CallToolResult, OutputParseCV, error) {
	if o.Failed() {
		return nil, OutputParseCV{}, errors.New(o.Error)
	}
	return nil, OutputParseCV{Record: o.Record.Map(), Keys: o.Record.Keys()}, nil
}
