// SPDX-License-Identifier: Apache-2.0

package record

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cvparseproj/cvparse-mcp/internal/extract"
	"github.com/cvparseproj/cvparse-mcp/internal/section"
)

// route maps a set of section names to an output key and its extractor.
type route struct {
	sections []string
	key      string
	extract  func(text string) any
}

// routes defines which sections get a structured extractor.
// Sections not listed here are kept verbatim under their slug.
var routes = []route{
	{sections: []string{section.Contact, section.ContactInformation}, key: KeyContact,
		extract: func(text string) any { return extract.Contact(text) }},
	{sections: []string{section.Skills, section.TechnicalSkills, section.SoftSkills}, key: KeySkills,
		extract: func(text string) any { return extract.Skills(text) }},
	{sections: []string{section.Experience, section.WorkExperience}, key: KeyExperience,
		extract: func(text string) any { return extract.Experience(text) }},
	{sections: []string{section.Education}, key: KeyEducation,
		extract: func(text string) any { return extract.Education(text) }},
	{sections: []string{section.Languages}, key: KeyLanguages,
		extract: func(text string) any { return extract.Languages(text) }},
}

func passthrough(text string) any { return text }

// Slug derives the output key of a section without a dedicated extractor.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

func dispatch(name string) (string, func(string) any) {
	for _, r := range routes {
		for _, s := range r.sections {
			if s == name {
				return r.key, r.extract
			}
		}
	}
	return Slug(name), passthrough
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithWorkers sets how many sections are extracted concurrently.
// Values below 1 mean sequential extraction.
func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		o.workers = n
	}
}

// Orchestrator routes each section of a segmented document to its extractor.
type Orchestrator struct {
	workers int
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(opts ...Option) *Orchestrator {
	o := &Orchestrator{workers: 1}
	for _, opt := range opts {
		opt(o)
	}
	if o.workers < 1 {
		o.workers = 1
	}
	return o
}

// job is the combined text of every section sharing one output key.
type job struct {
	key     string
	texts   []string
	extract func(string) any
}

// plan groups sections by output key in document order. GENERAL INFORMATION
// is implicit: it only becomes a key when lines precede the first header, so
// a document that opens with a header has no general_information entry
// instead of an empty string.
func plan(doc *section.Document) []job {
	var jobs []job
	index := make(map[string]int)
	for _, sec := range doc.Sections() {
		if sec.Name == section.GeneralInformation && len(sec.Lines) == 0 {
			continue
		}
		key, fn := dispatch(sec.Name)
		i, ok := index[key]
		if !ok {
			i = len(jobs)
			index[key] = i
			jobs = append(jobs, job{key: key, extract: fn})
		}
		if len(sec.Lines) > 0 {
			jobs[i].texts = append(jobs[i].texts, sec.Text())
		}
	}
	return jobs
}

// Structure builds the Record for doc. Extraction itself cannot fail; the
// only error is ctx being done before every section was processed.
func (o *Orchestrator) Structure(ctx context.Context, doc *section.Document) (*Record, error) {
	jobs := plan(doc)
	results := make([]any, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = j.extract(strings.Join(j.texts, "\n"))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rec := &Record{}
	for i, j := range jobs {
		rec.set(j.key, results[i])
	}
	return rec, nil
}
