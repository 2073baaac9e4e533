// SPDX-License-Identifier: Apache-2.0

// Package extract turns the joined text of one CV section into typed values.
// Every extractor is a pure function of its input; absent fields stay empty.
package extract

import "strings"

// ContactInfo holds the contact details found in a contact section.
type ContactInfo struct {
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Email    string   `json:"email,omitempty" yaml:"email,omitempty"`
	Phone    []string `json:"phone" yaml:"phone"`
	LinkedIn string   `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Address  string   `json:"address,omitempty" yaml:"address,omitempty"`
	Website  string   `json:"website,omitempty" yaml:"website,omitempty"`
}

// EducationEntry is one degree with its institution and date range.
type EducationEntry struct {
	Degree      string `json:"degree,omitempty" yaml:"degree,omitempty"`
	Institution string `json:"institution,omitempty" yaml:"institution,omitempty"`
	Date        string `json:"date,omitempty" yaml:"date,omitempty"`
}

func (e EducationEntry) isSet() bool {
	return e.Degree != "" || e.Institution != "" || e.Date != ""
}

// ExperienceEntry is one position with its responsibilities in document order.
type ExperienceEntry struct {
	Title            string   `json:"title,omitempty" yaml:"title,omitempty"`
	Company          string   `json:"company,omitempty" yaml:"company,omitempty"`
	Date             string   `json:"date,omitempty" yaml:"date,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty" yaml:"responsibilities,omitempty"`
}

func (e ExperienceEntry) isSet() bool {
	return e.Title != "" || e.Company != "" || e.Date != "" || len(e.Responsibilities) > 0
}

// builder accumulates one entry at a time. flush emits the current entry
// exactly once if any of its fields is set, then starts a fresh one.
type builder[T interface{ isSet() bool }] struct {
	current T
	entries []T
}

func (b *builder[T]) flush() {
	if b.current.isSet() {
		b.entries = append(b.entries, b.current)
	}
	var zero T
	b.current = zero
}

// result flushes the pending entry and returns everything collected.
// The returned slice is never nil.
func (b *builder[T]) result() []T {
	b.flush()
	if b.entries == nil {
		return []T{}
	}
	return b.entries
}

func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if trimmed := strings.TrimSpace(l); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
