// SPDX-License-Identifier: Apache-2.0

// Package source acquires plain text from CV files: the PDF text layer when
// there is one, OCR for scanned pages and images.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrNotFound is returned when the input path does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrUnsupportedType is returned for extensions other than PDF and images.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrNoText reports that acquisition produced only whitespace.
	ErrNoText = errors.New("no text could be extracted")
)

// ExtractError wraps a failure of one acquisition stage.
type ExtractError struct {
	Stage string
	Path  string
	Cause error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Cause)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// Kind is the input family of a file.
type Kind string

const (
	KindPDF   Kind = "pdf"
	KindImage Kind = "image"
)

// Acquisition methods reported in Result.Method.
const (
	MethodPDFText  = "pdf-text"
	MethodPDFOCR   = "pdf-ocr"
	MethodPDFMixed = "pdf-text+ocr"
	MethodImageOCR = "image-ocr"
)

var kindByExt = map[string]Kind{
	".pdf":  KindPDF,
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
}

// KindOf maps a path to its input kind by extension, case-insensitively.
func KindOf(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if kind, ok := kindByExt[ext]; ok {
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
}

// Config controls the external OCR tools.
type Config struct {
	Tesseract string // binary name or path; default "tesseract"
	Pdftoppm  string // binary name or path; default "pdftoppm"
	Lang      string // default "eng"
	DPI       int    // rasterisation DPI for scanned pages, default 300
	PSM       int    // tesseract page segmentation mode; 0 leaves the tool default
	OEM       int    // tesseract engine mode; 0 leaves the tool default
	MaxPages  int    // 0 = no limit
}

// Result is the text acquired from one file.
type Result struct {
	Text     string
	Kind     Kind
	Method   string
	Pages    int
	OCRPages []int
	Warnings []string
	Duration time.Duration
}

// PageReader returns the text layer of every page of a PDF, in page order.
// A page without a text layer yields an empty string.
type PageReader interface {
	Pages(path string) ([]string, error)
}

// Extractor acquires text from PDF and image files.
type Extractor struct {
	cfg    Config
	runner Runner
	pdf    PageReader
	logger zerolog.Logger
}

// Option customises an Extractor.
type Option func(*Extractor)

// WithRunner replaces the command runner used for OCR tools.
func WithRunner(r Runner) Option {
	return func(e *Extractor) { e.runner = r }
}

// WithPageReader replaces the PDF text layer reader.
func WithPageReader(p PageReader) Option {
	return func(e *Extractor) { e.pdf = p }
}

// NewExtractor creates an Extractor backed by ledongthuc/pdf and the tesseract and
// pdftoppm binaries.
func NewExtractor(cfg Config, logger zerolog.Logger, opts ...Option) *Extractor {
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	e := &Extractor{
		cfg:    cfg,
		runner: execRunner{logger: logger},
		pdf:    pdfReader{},
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract reads the text of the file at path. The returned text is
// normalised; it may be empty when nothing could be read.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Result{}, &ExtractError{Stage: "stat", Path: path, Cause: err}
	}

	kind, err := KindOf(path)
	if err != nil {
		e.logger.Warn().Str("path", path).Msg("unsupported input extension")
		return Result{}, err
	}
	e.logger.Debug().Str("path", path).Str("kind", string(kind)).Msg("starting text extraction")

	var res Result
	switch kind {
	case KindPDF:
		res, err = e.extractPDF(ctx, path)
	case KindImage:
		res, err = e.extractImage(ctx, path)
	}
	res.Kind = kind
	res.Duration = time.Since(start)
	if err != nil {
		return res, err
	}

	res.Text = Normalize(res.Text)
	e.logger.Debug().
		Str("path", path).
		Str("method", res.Method).
		Int("pages", res.Pages).
		Ints("ocr_pages", res.OCRPages).
		Int("chars", len(res.Text)).
		Dur("duration", res.Duration).
		Msg("text extraction finished")
	return res, nil
}

func (e *Extractor) extractImage(ctx context.Context, path string) (Result, error) {
	text, err := e.tesseract(ctx, path)
	if err != nil {
		return Result{Method: MethodImageOCR}, &ExtractError{Stage: "ocr", Path: path, Cause: err}
	}
	return Result{Text: text, Method: MethodImageOCR, Pages: 1, OCRPages: []int{1}}, nil
}

// extractPDF keeps each page's text layer and OCRs the pages that have none.
func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	pages, err := e.pdf.Pages(path)
	if err != nil {
		return Result{Method: MethodPDFText}, &ExtractError{Stage: "pdf", Path: path, Cause: err}
	}
	if e.cfg.MaxPages > 0 && len(pages) > e.cfg.MaxPages {
		pages = pages[:e.cfg.MaxPages]
	}

	res := Result{Pages: len(pages)}
	texts := make([]string, 0, len(pages))
	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if strings.TrimSpace(page) != "" {
			texts = append(texts, page)
			continue
		}
		pageNr := i + 1
		res.OCRPages = append(res.OCRPages, pageNr)
		text, err := e.ocrPage(ctx, path, pageNr)
		if err != nil {
			e.logger.Warn().Err(err).Str("path", path).Int("page", pageNr).Msg("page OCR failed")
			res.Warnings = append(res.Warnings, fmt.Sprintf("page %d: %v", pageNr, err))
			continue
		}
		texts = append(texts, text)
	}

	switch {
	case len(res.OCRPages) == 0:
		res.Method = MethodPDFText
	case len(res.OCRPages) == len(pages):
		res.Method = MethodPDFOCR
	default:
		res.Method = MethodPDFMixed
	}
	res.Text = strings.Join(texts, "\n")
	return res, nil
}
