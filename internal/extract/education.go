// SPDX-License-Identifier: Apache-2.0

package extract

import "regexp"

var (
	degreeRe      = regexp.MustCompile(`(?i)(Bachelor|Master|PhD|B\.Sc|M\.Sc|Diploma|Degree|Licence|Engineering)`)
	institutionRe = regexp.MustCompile(`(?i)(University|School|College|Institute)`)
	yearRangeRe   = regexp.MustCompile(`(\d{4})\s?[-–—]\s?(\d{4}|Present)`)
)

// Education extracts degree entries. A degree line starts a new entry;
// institution and date lines fill the current one; other lines are ignored.
func Education(text string) []EducationEntry {
	var b builder[EducationEntry]

	for _, line := range nonEmptyLines(text) {
		switch {
		case degreeRe.MatchString(line):
			b.flush()
			b.current.Degree = line
		case institutionRe.MatchString(line):
			b.current.Institution = line
		case yearRangeRe.MatchString(line):
			b.current.Date = line
		}
	}
	return b.result()
}
