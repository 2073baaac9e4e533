// SPDX-License-Identifier: Apache-2.0

// Package sourcetest builds fixture files for text acquisition tests.
package sourcetest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Font selects how fixture text is encoded.
type Font int

const (
	// Helvetica is a simple font; strings are literal bytes.
	Helvetica Font = iota
	// Subset is an Identity-H composite font as written by word processors:
	// strings are two-byte glyph ids and a ToUnicode map restores the text.
	Subset
	// SubsetNoMap is Subset without the ToUnicode map.
	SubsetNoMap
)

// glyphOffset maps printable ASCII onto TrueType-style glyph ids (space = 3).
const glyphOffset = 0x1D

const toUnicodeCMap = `begincmap
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
1 beginbfrange
<0003> <005D> <0020>
endbfrange
endcmap`

var pdfEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

func (f Font) show(line string) string {
	if f == Helvetica {
		return fmt.Sprintf("(%s) Tj", pdfEscaper.Replace(line))
	}
	var b strings.Builder
	b.WriteByte('<')
	for _, r := range line {
		fmt.Fprintf(&b, "%04X", int(r)-glyphOffset)
	}
	b.WriteString("> Tj")
	return b.String()
}

// PDF returns a well-formed PDF with one page per element of pages. Each
// page shows its lines top to bottom in Helvetica; a page with no lines has
// no text layer.
func PDF(pages ...[]string) []byte {
	return PDFWithFont(Helvetica, pages...)
}

// PDFWithFont is PDF with the text set in font. Subset fonts only encode
// characters from space to 'z'.
func PDFWithFont(font Font, pages ...[]string) []byte {
	extra := 4 + 2*len(pages)
	var objects []string
	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objects = append(objects, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))

	switch font {
	case Helvetica:
		objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	default:
		toUnicode := ""
		if font == Subset {
			toUnicode = fmt.Sprintf(" /ToUnicode %d 0 R", extra+1)
		}
		objects = append(objects, fmt.Sprintf(
			"<< /Type /Font /Subtype /Type0 /BaseFont /ABCDEF+Calibri /Encoding /Identity-H /DescendantFonts [%d 0 R]%s >>",
			extra, toUnicode))
	}

	for i, lines := range pages {
		content := "q Q"
		if len(lines) > 0 {
			var b strings.Builder
			b.WriteString("BT /F1 12 Tf 72 720 Td")
			for j, line := range lines {
				if j > 0 {
					b.WriteString(" 0 -14 Td")
				}
				b.WriteString(" " + font.show(line))
			}
			b.WriteString(" ET")
			content = b.String()
		}
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			stream(content),
		)
	}

	if font != Helvetica {
		objects = append(objects,
			"<< /Type /Font /Subtype /CIDFontType2 /BaseFont /ABCDEF+Calibri /CIDSystemInfo << /Registry (Adobe) /Ordering (Identity) /Supplement 0 >> /DW 500 >>",
			stream(toUnicodeCMap),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func stream(content string) string {
	return fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content)
}

// WritePDF writes PDF(pages...) into a temporary directory and returns its path.
func WritePDF(t testing.TB, name string, pages ...[]string) string {
	t.Helper()
	return WritePDFWithFont(t, name, Helvetica, pages...)
}

// WritePDFWithFont writes PDFWithFont(font, pages...) into a temporary
// directory and returns its path.
func WritePDFWithFont(t testing.TB, name string, font Font, pages ...[]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, PDFWithFont(font, pages...), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
