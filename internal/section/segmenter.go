// SPDX-License-Identifier: Apache-2.0

package section

import (
	"regexp"
	"strings"

	"github.com/cvparseproj/cvparse-mcp/internal/textcase"
)

// Kind tags a line classification.
type Kind int

const (
	Content Kind = iota
	Header
)

func (k Kind) String() string {
	if k == Header {
		return "header"
	}
	return "content"
}

// Decision is the result of classifying one line. Name and Rule are set only
// for headers.
type Decision struct {
	Kind Kind
	Name string
	Rule string
}

// Detector rule names reported in Decision.Rule.
const (
	RuleTaxonomy  = "taxonomy"
	RuleUppercase = "uppercase"
	RuleTitleCase = "titlecase"
)

var titleCaseRe = regexp.MustCompile(`^[A-Z][a-z]+( [A-Z][a-z]+)*$`)

// Options tunes the header heuristics. Zero values take the defaults.
type Options struct {
	Cutoff        float64
	MaxUpperWords int
	MaxTitleWords int
}

func (o *Options) defaults() {
	if o.Cutoff <= 0 || o.Cutoff > 1 {
		o.Cutoff = DefaultCutoff
	}
	if o.MaxUpperWords <= 0 {
		o.MaxUpperWords = 5
	}
	if o.MaxTitleWords <= 0 {
		o.MaxTitleWords = 4
	}
}

type detector struct {
	rule   string
	detect func(line string) (string, bool)
}

// Segmenter partitions document lines into named sections.
type Segmenter struct {
	normalizer *Normalizer
	detectors  []detector
}

// NewSegmenter creates a Segmenter. Detectors run in priority order:
// taxonomy match, short all-caps line, short title-case line.
func NewSegmenter(opts Options) *Segmenter {
	opts.defaults()
	s := &Segmenter{normalizer: NewNormalizer(opts.Cutoff)}
	s.detectors = []detector{
		{rule: RuleTaxonomy, detect: s.normalizer.Normalize},
		{rule: RuleUppercase, detect: func(line string) (string, bool) {
			return UppercaseHeader(line, opts.MaxUpperWords)
		}},
		{rule: RuleTitleCase, detect: func(line string) (string, bool) {
			return TitleCaseHeader(line, opts.MaxTitleWords)
		}},
	}
	return s
}

// Normalizer returns the header normalizer used by the taxonomy detector.
func (s *Segmenter) Normalizer() *Normalizer {
	return s.normalizer
}

// Classify decides whether a trimmed, non-empty line starts a new section.
func (s *Segmenter) Classify(line string) Decision {
	for _, d := range s.detectors {
		if name, ok := d.detect(line); ok {
			return Decision{Kind: Header, Name: name, Rule: d.rule}
		}
	}
	return Decision{Kind: Content}
}

// Segment splits text into lines and assigns every non-empty trimmed line to
// exactly one section. Header lines are consumed and never stored as content.
// A repeated header continues the existing section.
func (s *Segmenter) Segment(text string) *Document {
	doc := NewDocument()
	current := GeneralInformation

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		decision := s.Classify(line)
		if decision.Kind == Header {
			current = decision.Name
			doc.ensure(current)
			continue
		}
		doc.appendLine(current, line)
	}
	return doc
}

// UppercaseHeader accepts a line with no lowercase letters, at least one
// uppercase letter and at most maxWords words. The name is the line itself.
func UppercaseHeader(line string, maxWords int) (string, bool) {
	if !textcase.IsUpper(line) || textcase.WordCount(line) > maxWords {
		return "", false
	}
	return strings.ToUpper(line), true
}

// TitleCaseHeader accepts a line of capitalised letter-only words with at
// most maxWords words. The name is the uppercased line.
func TitleCaseHeader(line string, maxWords int) (string, bool) {
	if !titleCaseRe.MatchString(line) || textcase.WordCount(line) > maxWords {
		return "", false
	}
	return strings.ToUpper(line), true
}
