// SPDX-License-Identifier: Apache-2.0

// Package pipeline runs text acquisition, segmentation and extraction for one
// CV and classifies failures into the user-facing error envelope.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cvparseproj/cvparse-mcp/internal/config"
	"github.com/cvparseproj/cvparse-mcp/internal/record"
	"github.com/cvparseproj/cvparse-mcp/internal/section"
	"github.com/cvparseproj/cvparse-mcp/internal/source"
)

// TextSource acquires the text of a file.
type TextSource interface {
	Extract(ctx context.Context, path string) (source.Result, error)
}

// Pipeline turns a file or a text into a structured record.
type Pipeline struct {
	source       TextSource
	segmenter    *section.Segmenter
	orchestrator *record.Orchestrator
	validate     bool
	logger       zerolog.Logger
}

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithSource replaces the text acquisition stage.
func WithSource(s TextSource) Option {
	return func(p *Pipeline) { p.source = s }
}

// New creates a Pipeline from cfg. A nil cfg uses config.Default.
func New(cfg *config.Config, logger zerolog.Logger, opts ...Option) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	p := &Pipeline{
		source:       source.NewExtractor(cfg.SourceConfig(), logger),
		segmenter:    section.NewSegmenter(cfg.SegmenterOptions()),
		orchestrator: record.NewOrchestrator(record.WithWorkers(cfg.Pipeline.Workers)),
		validate:     cfg.Pipeline.ValidateRecord,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RunResult is the output of a successful run.
type RunResult struct {
	RunID    string
	Record   *record.Record
	Document *section.Document
	Source   source.Result
}

// Run processes the file at path.
func (p *Pipeline) Run(ctx context.Context, path string) (RunResult, error) {
	runID := uuid.NewString()
	logger := p.logger.With().Str("run_id", runID).Str("path", path).Logger()

	src, err := p.source.Extract(ctx, path)
	if err != nil {
		logger.Warn().Err(err).Msg("text acquisition failed")
		return RunResult{RunID: runID}, err
	}

	result, err := p.structure(ctx, logger, src.Text)
	result.RunID = runID
	result.Source = src
	return result, err
}

// RunText processes already acquired text.
func (p *Pipeline) RunText(ctx context.Context, text string) (RunResult, error) {
	runID := uuid.NewString()
	logger := p.logger.With().Str("run_id", runID).Logger()

	result, err := p.structure(ctx, logger, source.Normalize(text))
	result.RunID = runID
	return result, err
}

// Segment acquires the text of path and returns its sections without
// running the extractors.
func (p *Pipeline) Segment(ctx context.Context, path string) (*section.Document, error) {
	src, err := p.source.Extract(ctx, path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(src.Text) == "" {
		return nil, source.ErrNoText
	}
	return p.segmenter.Segment(src.Text), nil
}

func (p *Pipeline) structure(ctx context.Context, logger zerolog.Logger, text string) (RunResult, error) {
	if strings.TrimSpace(text) == "" {
		logger.Warn().Msg("no text to segment")
		return RunResult{}, source.ErrNoText
	}

	doc := p.segmenter.Segment(text)
	logger.Debug().Strs("sections", doc.Names()).Msg("segmented")

	rec, err := p.orchestrator.Structure(ctx, doc)
	if err != nil {
		return RunResult{Document: doc}, fmt.Errorf("structuring record: %w", err)
	}

	if p.validate {
		if err := record.Validate(rec); err != nil {
			logger.Error().Err(err).Msg("record failed schema validation")
			return RunResult{Document: doc}, err
		}
	}

	logger.Info().Strs("keys", rec.Keys()).Msg("record extracted")
	return RunResult{Record: rec, Document: doc}, nil
}

// ProcessFile runs the file entry point and never fails: errors are folded
// into the Outcome.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) Outcome {
	result, err := p.Run(ctx, path)
	if err != nil {
		return Failure(err)
	}
	return Success(result.Record)
}

// ProcessText is ProcessFile for text that was acquired elsewhere.
func (p *Pipeline) ProcessText(ctx context.Context, text string) Outcome {
	result, err := p.RunText(ctx, text)
	if err != nil {
		return Failure(err)
	}
	return Success(result.Record)
}

// Error messages of the file entry point.
const (
	MsgNotFound    = "File not found"
	MsgUnsupported = "Unsupported file type"
	MsgNoText      = "No text could be extracted"
)

// Classify maps err to the message reported to the caller.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, source.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, source.ErrUnsupportedType):
		return MsgUnsupported
	case errors.Is(err, source.ErrNoText):
		return MsgNoText
	}
	return err.Error()
}
