// SPDX-License-Identifier: Apache-2.0

// Package report renders records and segmented documents for a terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cvparseproj/cvparse-mcp/internal/extract"
	"github.com/cvparseproj/cvparse-mcp/internal/record"
	"github.com/cvparseproj/cvparse-mcp/internal/section"
)

const bullet = "  • "

// field is one labelled value of a structured entry.
type field struct {
	name  string
	value string
}

// Printer writes human-readable reports.
type Printer struct {
	w     io.Writer
	title cases.Caser
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, title: cases.Title(language.English)}
}

// PrintRecord writes one block per record key, in record order.
func (p *Printer) PrintRecord(rec *record.Record) error {
	var b strings.Builder
	for i, key := range rec.Keys() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "=== %s ===\n", heading(key))

		value, _ := rec.Value(key)
		switch v := value.(type) {
		case *extract.ContactInfo:
			p.writeFields(&b, contactFields(v))
		case []extract.ExperienceEntry:
			for _, e := range v {
				p.writeFields(&b, experienceFields(e))
				b.WriteByte('\n')
			}
		case []extract.EducationEntry:
			for _, e := range v {
				p.writeFields(&b, educationFields(e))
				b.WriteByte('\n')
			}
		case []string:
			for _, item := range v {
				b.WriteString(bullet + item + "\n")
			}
		case string:
			if v != "" {
				b.WriteString(v + "\n")
			}
		}
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

// PrintDocument writes the sections of doc with their lines.
func (p *Printer) PrintDocument(doc *section.Document) error {
	var b strings.Builder
	for i, sec := range doc.Sections() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "=== %s === (%d lines)\n", sec.Name, len(sec.Lines))
		for _, line := range sec.Lines {
			b.WriteString("  " + line + "\n")
		}
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

// PrintError writes a failure message.
func (p *Printer) PrintError(msg string) error {
	_, err := fmt.Fprintf(p.w, "Error: %s\n", msg)
	return err
}

func (p *Printer) writeFields(b *strings.Builder, fields []field) {
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(b, "%s%s: %s\n", bullet, p.title.String(f.name), f.value)
	}
}

func heading(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "_", " "))
}

func contactFields(c *extract.ContactInfo) []field {
	return []field{
		{"name", c.Name},
		{"email", c.Email},
		{"phone", strings.Join(c.Phone, ", ")},
		{"linkedin", c.LinkedIn},
		{"address", c.Address},
		{"website", c.Website},
	}
}

func educationFields(e extract.EducationEntry) []field {
	return []field{
		{"degree", e.Degree},
		{"institution", e.Institution},
		{"date", e.Date},
	}
}

func experienceFields(e extract.ExperienceEntry) []field {
	return []field{
		{"title", e.Title},
		{"company", e.Company},
		{"date", e.Date},
		{"responsibilities", strings.Join(e.Responsibilities, "; ")},
	}
}
