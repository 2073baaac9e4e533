// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"regexp"
	"strings"

	"github.com/cvparseproj/cvparse-mcp/internal/textcase"
)

const nameScanLines = 5

var (
	emailRe    = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRe    = regexp.MustCompile(`\+?\d[\d \t()-]{7,}\d`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/\S+`)
	urlRe      = regexp.MustCompile(`(?i)(?:https?://|www\.)\S+`)
	schemeRe   = regexp.MustCompile(`(?i)^https?://`)
	addressRe  = regexp.MustCompile(`\d{1,5} [\w ]{3,}, [\w ]{3,}, [A-Z]{2} \d{5}`)
)

// Contact extracts contact details from the joined text of a contact section.
func Contact(text string) ContactInfo {
	info := ContactInfo{Phone: []string{}}

	lines := nonEmptyLines(text)
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}
	for _, line := range lines {
		words := textcase.WordCount(line)
		if (textcase.IsTitle(line) || textcase.IsUpper(line)) && words >= 2 && words <= 4 {
			info.Name = line
			break
		}
	}

	info.Email = emailRe.FindString(text)

	for _, phone := range phoneRe.FindAllString(text, -1) {
		info.Phone = append(info.Phone, strings.TrimSpace(phone))
	}

	if m := linkedinRe.FindString(text); m != "" {
		m = trimURL(m)
		if !schemeRe.MatchString(m) {
			m = "https://" + m
		}
		info.LinkedIn = m
	}

	info.Address = addressRe.FindString(text)

	for _, m := range urlRe.FindAllString(text, -1) {
		if strings.Contains(strings.ToLower(m), "linkedin.com") {
			continue
		}
		info.Website = trimURL(m)
		break
	}

	return info
}

func trimURL(u string) string {
	return strings.TrimRight(u, ".,;:)")
}
