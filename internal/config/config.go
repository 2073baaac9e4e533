// SPDX-License-Identifier: Apache-2.0

// Package config loads the cvparse YAML configuration.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/cvparseproj/cvparse-mcp/internal/logging"
	"github.com/cvparseproj/cvparse-mcp/internal/section"
	"github.com/cvparseproj/cvparse-mcp/internal/source"
)

// Environment variables applied on top of the file.
const (
	EnvLogLevel    = "CVPARSE_LOG_LEVEL"
	EnvTesseract   = "CVPARSE_TESSERACT"
	EnvPdftoppm    = "CVPARSE_PDFTOPPM"
	EnvOCRLang     = "CVPARSE_OCR_LANG"
	EnvFuzzyCutoff = "CVPARSE_FUZZY_CUTOFF"
)

// SegmenterConfig tunes header detection.
type SegmenterConfig struct {
	FuzzyCutoff   float64 `yaml:"fuzzy_cutoff" validate:"gt=0,lte=1"`
	MaxUpperWords int     `yaml:"max_upper_words" validate:"gte=1"`
	MaxTitleWords int     `yaml:"max_title_words" validate:"gte=1"`
}

// OCRConfig locates the OCR tools and sets their options.
type OCRConfig struct {
	Tesseract string `yaml:"tesseract" validate:"required"`
	Pdftoppm  string `yaml:"pdftoppm" validate:"required"`
	Lang      string `yaml:"lang" validate:"required"`
	DPI       int    `yaml:"dpi" validate:"gte=72,lte=1200"`
	PSM       int    `yaml:"psm" validate:"gte=0,lte=13"`
	OEM       int    `yaml:"oem" validate:"gte=0,lte=3"`
	MaxPages  int    `yaml:"max_pages" validate:"gte=0"`
}

// PipelineConfig controls record assembly.
type PipelineConfig struct {
	Workers        int  `yaml:"workers" validate:"gte=0"`
	ValidateRecord bool `yaml:"validate_record"`
}

// OutputConfig selects how the CLI prints a record.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=json yaml text"`
	Indent bool   `yaml:"indent"`
}

// Config is the complete cvparse configuration.
type Config struct {
	Segmenter SegmenterConfig `yaml:"segmenter"`
	OCR       OCRConfig       `yaml:"ocr"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Log       logging.Config  `yaml:"log"`
	Output    OutputConfig    `yaml:"output"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Segmenter: SegmenterConfig{
			FuzzyCutoff:   section.DefaultCutoff,
			MaxUpperWords: 5,
			MaxTitleWords: 4,
		},
		OCR: OCRConfig{
			Tesseract: "tesseract",
			Pdftoppm:  "pdftoppm",
			Lang:      "eng",
			DPI:       300,
			PSM:       6,
			OEM:       3,
		},
		Pipeline: PipelineConfig{Workers: 1},
		Log:      logging.Config{Level: "info", Format: "pretty"},
		Output:   OutputConfig{Format: "json", Indent: true},
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if len(bytes.TrimSpace(data)) > 0 {
			if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
				return nil, fmt.Errorf("failed to parse config YAML: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvTesseract); v != "" {
		c.OCR.Tesseract = v
	}
	if v := os.Getenv(EnvPdftoppm); v != "" {
		c.OCR.Pdftoppm = v
	}
	if v := os.Getenv(EnvOCRLang); v != "" {
		c.OCR.Lang = v
	}
	if v := os.Getenv(EnvFuzzyCutoff); v != "" {
		cutoff, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvFuzzyCutoff, v, err)
		}
		c.Segmenter.FuzzyCutoff = cutoff
	}
	return nil
}

// Validate checks every section against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// SegmenterOptions converts the segmenter section.
func (c *Config) SegmenterOptions() section.Options {
	return section.Options{
		Cutoff:        c.Segmenter.FuzzyCutoff,
		MaxUpperWords: c.Segmenter.MaxUpperWords,
		MaxTitleWords: c.Segmenter.MaxTitleWords,
	}
}

// SourceConfig converts the OCR section.
func (c *Config) SourceConfig() source.Config {
	return source.Config{
		Tesseract: c.OCR.Tesseract,
		Pdftoppm:  c.OCR.Pdftoppm,
		Lang:      c.OCR.Lang,
		DPI:       c.OCR.DPI,
		PSM:       c.OCR.PSM,
		OEM:       c.OCR.OEM,
		MaxPages:  c.OCR.MaxPages,
	}
}
