// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Glyph layout thresholds, as fractions of the font size.
const (
	lineGap = 0.5
	wordGap = 0.15
)

// pdfReader reads the text layer with ledongthuc/pdf, which applies font
// encodings and ToUnicode maps. Files it cannot open are rewritten by pdfcpu
// and read again.
type pdfReader struct{}

// Pages returns the text of every page in page order.
func (pdfReader) Pages(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		if f != nil {
			_ = f.Close()
		}
		r, err = rewritten(path)
		if err != nil {
			return nil, err
		}
		return readPages(r), nil
	}
	defer func() { _ = f.Close() }()
	return readPages(r), nil
}

// rewritten normalises a damaged file with pdfcpu into a plain xref table
// layout and opens the result.
func rewritten(path string) (*pdf.Reader, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	conf := model.NewDefaultConfiguration()
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false

	ctx, err := api.ReadValidateAndOptimize(in, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}
	var buf bytes.Buffer
	if err := api.WriteContext(ctx, &buf); err != nil {
		return nil, fmt.Errorf("pdfcpu write: %w", err)
	}
	r, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		return nil, fmt.Errorf("reading rewritten pdf: %w", err)
	}
	return r, nil
}

func readPages(r *pdf.Reader) []string {
	pages := make([]string, r.NumPage())
	for i := range pages {
		p := r.Page(i + 1)
		if p.V.IsNull() {
			continue
		}
		text := pageText(p)
		if unreadable(text) {
			continue
		}
		pages[i] = text
	}
	return pages
}

func pageText(p pdf.Page) (text string) {
	defer func() {
		// the content interpreter panics on malformed streams
		if recover() != nil {
			text = ""
		}
	}()
	return layout(p.Content().Text)
}

// layout joins glyphs into lines. A baseline move of more than half the font
// size starts a new line and a horizontal gap wider than a thin space inserts
// one.
func layout(glyphs []pdf.Text) string {
	var b strings.Builder
	var prev *pdf.Text
	for i := range glyphs {
		g := &glyphs[i]
		if prev != nil {
			size := math.Max(math.Max(g.FontSize, prev.FontSize), 1)
			switch {
			case math.Abs(g.Y-prev.Y) > lineGap*size:
				b.WriteByte('\n')
			case g.X-(prev.X+prev.W) > wordGap*size && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(g.S, " "):
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
		prev = g
	}
	return b.String()
}

// unreadable reports whether a text layer is mostly undecodable glyph codes,
// as left behind by subset fonts without a ToUnicode map. Such pages are
// treated as having no text layer so they go to OCR.
func unreadable(text string) bool {
	var total, bad int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if r == unicode.ReplacementChar || (unicode.IsControl(r) && r != '\t') {
			bad++
		}
	}
	return total > 0 && bad*4 >= total
}
