// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvparseproj/cvparse-mcp/internal/source/sourcetest"
)

var cvPage = []string{
	"CONTACT",
	"jane.doe@example.com",
	"+1 (555) 123-4567",
	"EDUCATION",
	"Bachelor of Science",
	"MIT University",
	"2018 - 2022",
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestParseCommand(t *testing.T) {
	pdf := sourcetest.WritePDF(t, "cv.pdf", cvPage)
	docx := filepath.Join(t.TempDir(), "cv.docx")
	require.NoError(t, os.WriteFile(docx, []byte("PK"), 0o600))

	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		validateOutput func(t *testing.T, out string)
	}{
		{
			name: "json record",
			args: []string{"parse", pdf},
			validateOutput: func(t *testing.T, out string) {
				assert.JSONEq(t, `{
					"contact": {"email": "jane.doe@example.com", "phone": ["+1 (555) 123-4567"]},
					"education": [{"degree": "Bachelor of Science", "institution": "MIT University", "date": "2018 - 2022"}]
				}`, out)
			},
		},
		{
			name: "yaml record",
			args: []string{"parse", "--format", "yaml", pdf},
			validateOutput: func(t *testing.T, out string) {
				assert.Contains(t, out, "contact:")
				assert.Contains(t, out, "degree: Bachelor of Science")
			},
		},
		{
			name: "text report",
			args: []string{"parse", "-f", "text", pdf},
			validateOutput: func(t *testing.T, out string) {
				assert.Contains(t, out, "=== CONTACT ===\n  • Email: jane.doe@example.com\n")
				assert.Contains(t, out, "=== EDUCATION ===\n  • Degree: Bachelor of Science\n")
			},
		},
		{
			name: "validated record",
			args: []string{"parse", "--validate", "--workers", "4", pdf},
			validateOutput: func(t *testing.T, out string) {
				assert.Contains(t, out, `"education"`)
			},
		},
		{
			name:    "missing file prints the error envelope",
			args:    []string{"parse", filepath.Join(t.TempDir(), "absent.pdf")},
			wantErr: true,
			validateOutput: func(t *testing.T, out string) {
				assert.JSONEq(t, `{"error": "File not found"}`, out)
			},
		},
		{
			name:    "missing file in text format",
			args:    []string{"parse", "-f", "text", "cv.docx"},
			wantErr: true,
			validateOutput: func(t *testing.T, out string) {
				assert.Equal(t, "Error: File not found\n", out)
			},
		},
		{
			name:    "unsupported file type",
			args:    []string{"parse", docx},
			wantErr: true,
			validateOutput: func(t *testing.T, out string) {
				assert.JSONEq(t, `{"error": "Unsupported file type"}`, out)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr {
				var code exitCode
				require.ErrorAs(t, err, &code)
				assert.Equal(t, exitCode(1), code)
			} else {
				require.NoError(t, err)
			}
			tt.validateOutput(t, out)
		})
	}
}

func TestParseCommand_UnknownFormat(t *testing.T) {
	pdf := sourcetest.WritePDF(t, "cv.pdf", cvPage)
	_, err := run(t, "parse", "--format", "xml", pdf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestSegmentCommand(t *testing.T) {
	pdf := sourcetest.WritePDF(t, "cv.pdf", cvPage)

	out, err := run(t, "segment", pdf)
	require.NoError(t, err)
	assert.Contains(t, out, "=== CONTACT === (2 lines)\n  jane.doe@example.com\n  +1 (555) 123-4567\n")
	assert.Contains(t, out, "=== EDUCATION === (3 lines)\n")

	out, err = run(t, "segment", "--json", pdf)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "EDUCATION"`)

	_, err = run(t, "segment", filepath.Join(t.TempDir(), "absent.pdf"))
	require.Error(t, err)
	assert.Equal(t, "File not found", err.Error())
}
