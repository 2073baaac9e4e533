// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"regexp"
	"strings"

	"github.com/cvparseproj/cvparse-mcp/internal/textcase"
)

const maxTitleWords = 5

var (
	jobTitleRe    = regexp.MustCompile(`^[A-Z][a-z]+( [A-Z][a-z]+)*$`)
	companyDateRe = regexp.MustCompile(`^[A-Z][a-zA-Z0-9& ]+,\s[A-Z][a-z]+\s\d{4}\s?[-–—]\s?(\w+\s\d{4}|Present)`)
	rangeSepRe    = regexp.MustCompile(`\s[-–—]\s`)
)

var bulletMarkers = []string{"- ", "• "}

// Experience extracts positions. A short title-case line starts a new entry,
// a "<Company>, <Month Year> - <Month Year|Present>" line sets company and
// date, and bullet lines become responsibilities of the current entry.
func Experience(text string) []ExperienceEntry {
	var b builder[ExperienceEntry]

	for _, line := range nonEmptyLines(text) {
		if jobTitleRe.MatchString(line) && textcase.WordCount(line) <= maxTitleWords {
			b.flush()
			b.current.Title = line
			continue
		}
		if companyDateRe.MatchString(line) {
			if company, date, ok := splitCompanyDate(line); ok {
				b.current.Company = company
				b.current.Date = date
			}
			continue
		}
		if item, ok := bulletItem(line); ok {
			b.current.Responsibilities = append(b.current.Responsibilities, item)
		}
	}
	return b.result()
}

// splitCompanyDate splits on the first comma and on the range separator,
// requires at least company, start and end, and joins the date parts with a
// space.
func splitCompanyDate(line string) (company, date string, ok bool) {
	head, rest, found := strings.Cut(line, ",")
	if !found {
		return "", "", false
	}
	parts := append([]string{strings.TrimSpace(head)}, rangeSepRe.Split(strings.TrimSpace(rest), -1)...)
	if len(parts) < 3 {
		return "", "", false
	}
	return parts[0], strings.Join(parts[1:], " "), true
}

func bulletItem(line string) (string, bool) {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return "", false
}
