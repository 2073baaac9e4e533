// SPDX-License-Identifier: Apache-2.0

package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvparseproj/cvparse-mcp/internal/source/sourcetest"
)

func glyphs(y, x, w float64, s string) []pdf.Text {
	out := make([]pdf.Text, 0, len(s))
	for _, r := range s {
		out = append(out, pdf.Text{FontSize: 10, X: x, Y: y, W: w, S: string(r)})
		x += w
	}
	return out
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name   string
		glyphs []pdf.Text
		want   string
	}{
		{
			name:   "baseline move starts a line",
			glyphs: append(glyphs(700, 72, 5, "SKILLS"), glyphs(686, 72, 5, "Go")...),
			want:   "SKILLS\nGo",
		},
		{
			name:   "small baseline shift stays on the line",
			glyphs: append(glyphs(700, 72, 5, "x"), glyphs(702, 77, 5, "2")...),
			want:   "x2",
		},
		{
			name:   "kerned gap becomes a space",
			glyphs: append(glyphs(700, 72, 5, "MIT"), glyphs(700, 90, 5, "University")...),
			want:   "MIT University",
		},
		{
			name:   "tight kerning keeps the word",
			glyphs: append(glyphs(700, 72, 5, "Ex"), glyphs(700, 82.5, 5, "perience")...),
			want:   "Experience",
		},
		{
			name:   "explicit space is not doubled",
			glyphs: append(glyphs(700, 72, 5, "Go "), glyphs(700, 120, 5, "Rust")...),
			want:   "Go Rust",
		},
		{
			name: "empty page",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout(tt.glyphs))
		})
	}
}

func TestUnreadable(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "raw two-byte glyph ids", text: "\x00-\x00D\x00Q\x00H\x00\x03\x00'\x00R\x00H\x00H", want: true},
		{name: "replacement characters", text: "\ufffd\ufffd\ufffd\ufffd\ufffd", want: true},
		{name: "plain text", text: "EDUCATION\nBachelor of Science", want: false},
		{name: "stray replacement character", text: "Caf\ufffd menu and more words", want: false},
		{name: "whitespace only", text: " \n\t", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, unreadable(tt.text))
		})
	}
}

func TestRewritten(t *testing.T) {
	path := sourcetest.WritePDF(t, "cv.pdf", []string{"SKILLS", "Go, Rust"})

	r, err := rewritten(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"SKILLS\nGo, Rust"}, readPages(r))
}

func TestPDFReader_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text, no pdf here"), 0o600))

	_, err := pdfReader{}.Pages(path)
	assert.Error(t, err)
}
