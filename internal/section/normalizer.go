// SPDX-License-Identifier: Apache-2.0

package section

import (
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
	"github.com/hbollon/go-edlib"
)

// DefaultCutoff is the minimum similarity ratio accepted by the fuzzy header match.
const DefaultCutoff = 0.7

// keywordRule fires when every group has at least one of its keywords in the header.
type keywordRule struct {
	groups [][]string
	// fuzzy lets a keyword also match a header token made of the same letters
	// in a different order ("WROK") whose OSA similarity reaches the cutoff.
	fuzzy  bool
	target string
}

// keywordRules are synonym fallbacks tried after the taxonomy lookups.
// Rules are evaluated in order; the first match wins.
var keywordRules = []keywordRule{
	{groups: [][]string{{"WORK"}, {"HISTORY"}}, fuzzy: true, target: WorkExperience},
	{groups: [][]string{{"EDUCATION", "QUALIFICATION"}}, target: Education},
	{groups: [][]string{{"CONTACT", "DETAILS"}}, target: Contact},
}

// Normalizer maps candidate header strings onto the canonical taxonomy.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	cutoff float64
	params *levenshtein.Params
}

// NewNormalizer creates a Normalizer with the given similarity cutoff.
// A cutoff outside (0, 1] falls back to DefaultCutoff.
func NewNormalizer(cutoff float64) *Normalizer {
	if cutoff <= 0 || cutoff > 1 {
		cutoff = DefaultCutoff
	}
	return &Normalizer{
		cutoff: cutoff,
		params: levenshtein.NewParams(),
	}
}

// Cutoff returns the similarity threshold in use.
func (n *Normalizer) Cutoff() float64 {
	return n.cutoff
}

// Normalize returns the canonical section name for candidate, trying an exact
// match, then the closest taxonomy entry by edit-distance ratio, then the
// keyword fallbacks.
func (n *Normalizer) Normalize(candidate string) (string, bool) {
	header := strings.ToUpper(strings.TrimSpace(candidate))
	if header == "" {
		return "", false
	}

	if IsCanonical(header) {
		return header, true
	}

	if name, ok := n.closest(header); ok {
		return name, true
	}

	for _, rule := range keywordRules {
		if n.ruleMatches(rule, header) {
			return rule.target, true
		}
	}
	return "", false
}

// closest returns the most similar taxonomy entry if it reaches the cutoff.
// Ties keep the earlier taxonomy entry.
func (n *Normalizer) closest(header string) (string, bool) {
	best, bestScore := "", 0.0
	for _, name := range Taxonomy {
		score := levenshtein.Similarity(header, name, n.params)
		if score > bestScore {
			best, bestScore = name, score
		}
	}
	if bestScore >= n.cutoff {
		return best, true
	}
	return "", false
}

func (n *Normalizer) ruleMatches(rule keywordRule, header string) bool {
	var tokens []string
	if rule.fuzzy {
		tokens = strings.FieldsFunc(header, func(r rune) bool { return !unicode.IsLetter(r) })
	}
	for _, group := range rule.groups {
		if !n.groupMatches(group, header, tokens) {
			return false
		}
	}
	return true
}

func (n *Normalizer) groupMatches(keywords []string, header string, tokens []string) bool {
	for _, kw := range keywords {
		if strings.Contains(header, kw) {
			return true
		}
		for _, tok := range tokens {
			if !sameLetters(tok, kw) {
				continue
			}
			score, err := edlib.StringsSimilarity(tok, kw, edlib.OSADamerauLevenshtein)
			if err == nil && float64(score) >= n.cutoff {
				return true
			}
		}
	}
	return false
}

// sameLetters reports whether a and b are anagrams of each other.
func sameLetters(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[rune]int, len(a))
	for _, r := range a {
		counts[r]++
	}
	for _, r := range b {
		counts[r]--
		if counts[r] < 0 {
			return false
		}
	}
	return true
}
