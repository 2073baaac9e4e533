// SPDX-License-Identifier: Apache-2.0

package section

import "strings"

// Section is one named block of content lines.
type Section struct {
	Name  string   `json:"name" yaml:"name"`
	Lines []string `json:"lines" yaml:"lines"`
}

// Text returns the section lines joined with newlines.
func (s Section) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Document is an ordered mapping from section name to its lines, in the
// order each name was first seen.
type Document struct {
	sections []Section
	index    map[string]int
}

// NewDocument creates a Document holding an empty GENERAL INFORMATION section.
func NewDocument() *Document {
	d := &Document{index: make(map[string]int)}
	d.ensure(GeneralInformation)
	return d
}

// Sections returns the sections in insertion order.
func (d *Document) Sections() []Section {
	out := make([]Section, len(d.sections))
	copy(out, d.sections)
	return out
}

// Names returns the section names in insertion order.
func (d *Document) Names() []string {
	names := make([]string, len(d.sections))
	for i, s := range d.sections {
		names[i] = s.Name
	}
	return names
}

// Lines returns the lines stored under name and whether the section exists.
func (d *Document) Lines(name string) ([]string, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.sections[i].Lines, true
}

// Len returns the number of sections.
func (d *Document) Len() int {
	return len(d.sections)
}

// ensure creates the section if it does not exist yet. An existing section
// keeps its accumulated lines.
func (d *Document) ensure(name string) {
	if _, ok := d.index[name]; ok {
		return
	}
	d.index[name] = len(d.sections)
	d.sections = append(d.sections, Section{Name: name, Lines: []string{}})
}

func (d *Document) appendLine(name, line string) {
	d.ensure(name)
	i := d.index[name]
	d.sections[i].Lines = append(d.sections[i].Lines, line)
}
