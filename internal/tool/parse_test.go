// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvparseproj/cvparse-mcp/internal/config"
	"github.com/cvparseproj/cvparse-mcp/internal/extract"
	"github.com/cvparseproj/cvparse-mcp/internal/pipeline"
)

const cvText = "CONTACT\njane.doe@example.com\n+1 (555) 123-4567\n" +
	"EDUCATION\nBachelor of Science\nMIT University\n2018 - 2022\n" +
	"WROK HISTROY\nAcme Corp, Jan 2020 - Present\n- built the parser\n" +
	"HOBBIES\nchess and hiking\n"

func newTools() *Tools {
	return New(pipeline.New(config.Default(), zerolog.Nop()))
}

func TestParseCVText(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	tests := []struct {
		name           string
		input          InputParseCVText
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputParseCV)
	}{
		{
			name:        "empty content returns error",
			input:       InputParseCVText{Content: ""},
			wantErr:     true,
			errContains: "No text could be extracted",
		},
		{
			name:  "full CV produces a record",
			input: InputParseCVText{Content: cvText},
			validateOutput: func(t *testing.T, output OutputParseCV) {
				assert.Equal(t, []string{"contact", "education", "experience", "hobbies"}, output.Keys)
				require.Len(t, output.Record, 4)

				contact, ok := output.Record["contact"].(*extract.ContactInfo)
				require.True(t, ok)
				assert.Equal(t, "jane.doe@example.com", contact.Email)

				experience, ok := output.Record["experience"].([]extract.ExperienceEntry)
				require.True(t, ok)
				require.Len(t, experience, 1)
				assert.Equal(t, "Acme Corp", experience[0].Company)

				assert.Equal(t, "chess and hiking", output.Record["hobbies"])
			},
		},
		{
			name:  "text without headers lands in general information",
			input: InputParseCVText{Content: "just some notes about me"},
			validateOutput: func(t *testing.T, output OutputParseCV) {
				assert.Equal(t, []string{"general_information"}, output.Keys)
				assert.Equal(t, "just some notes about me", output.Record["general_information"])
			},
		},
	}

	tools := newTools()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := tools.ParseCVText(ctx, req, tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.validateOutput(t, output)
		})
	}
}

func TestParseCVFile(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	dir := t.TempDir()
	txt := filepath.Join(dir, "cv.txt")
	require.NoError(t, os.WriteFile(txt, []byte(cvText), 0o600))

	tests := []struct {
		name        string
		input       InputParseCVFile
		errContains string
	}{
		{name: "empty path", input: InputParseCVFile{}, errContains: "path is required"},
		{name: "missing file", input: InputParseCVFile{Path: filepath.Join(dir, "absent.pdf")}, errContains: "File not found"},
		{name: "unsupported type", input: InputParseCVFile{Path: txt}, errContains: "Unsupported file type"},
	}

	tools := newTools()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tools.ParseCVFile(ctx, req, tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

// ---------------------------------------------------------------------------
// Server
// ---------------------------------------------------------------------------

func TestNewServer_CallTool(t *testing.T) {
	ctx := context.Background()
	server := NewServer(pipeline.New(config.Default(), zerolog.Nop()), "test")

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, tl := range tools.Tools {
		names = append(names, tl.Name)
	}
	assert.ElementsMatch(t, []string{"parse_cv_text", "parse_cv_file"}, names)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "parse_cv_text",
		Arguments: map[string]any{"content": "SKILLS\nGo, Rust"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	structured, ok := res.StructuredContent.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"skills"}, structured["keys"])

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "parse_cv_text",
		Arguments: map[string]any{"content": "   "},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
