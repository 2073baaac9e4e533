// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"regexp"
	"strings"

	"github.com/cvparseproj/cvparse-mcp/internal/textcase"
)

// maxSkillWords drops stray sentences that were segmented into a skills section.
const maxSkillWords = 5

var itemSplitRe = regexp.MustCompile(`[,•\n]`)

// Skills splits a skills section into items on commas, bullets and newlines.
// Order and duplicates are preserved.
func Skills(text string) []string {
	skills := []string{}
	for _, item := range splitItems(text) {
		if textcase.WordCount(item) <= maxSkillWords {
			skills = append(skills, item)
		}
	}
	return skills
}

// Languages splits a spoken-languages section the same way as Skills but
// keeps items of any length.
func Languages(text string) []string {
	return splitItems(text)
}

func splitItems(text string) []string {
	items := []string{}
	for _, item := range itemSplitRe.Split(text, -1) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
