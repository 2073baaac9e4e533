// SPDX-License-Identifier: Apache-2.0

package source

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?|\f|\v`)
	reBlankRun   = regexp.MustCompile(`[ \t\x{00A0}]+`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
)

// Normalize folds compatibility characters (ligatures, full-width forms)
// with NFKC, unifies line endings and collapses runs of blanks. Line breaks
// are kept.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = norm.NFKC.String(s)
	s = reCRLF.ReplaceAllString(s, "\n")
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
			return -1
		}
		return r
	}, s)
	s = reBlankRun.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = reMultiBlank.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(s)
}
