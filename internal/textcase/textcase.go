// SPDX-License-Identifier: Apache-2.0

// Package textcase holds the letter-case predicates shared by the header and
// name heuristics.
package textcase

import (
	"strings"
	"unicode"
)

// IsUpper reports whether s has at least one cased letter and no lowercase
// or titlecase letters. Digits and punctuation are ignored.
func IsUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// IsTitle reports whether every run of letters in s starts with an uppercase
// letter followed only by lowercase letters, and s has at least one letter.
func IsTitle(s string) bool {
	cased, prevCased := false, false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			cased, prevCased = true, true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased = true
		default:
			prevCased = false
		}
	}
	return cased
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
