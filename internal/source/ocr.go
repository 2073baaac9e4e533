// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// tesseract runs OCR on one image and returns its text.
func (e *Extractor) tesseract(ctx context.Context, image string) (string, error) {
	args := []string{image, "stdout", "-l", e.cfg.Lang}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, strings.TrimSpace(string(errb)))
	}
	return string(out), nil
}

// ocrPage rasterises a single PDF page and OCRs it.
func (e *Extractor) ocrPage(ctx context.Context, path string, pageNr int) (string, error) {
	tmpDir, err := os.MkdirTemp("", "cvparse-page-*")
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn().Err(err).Str("dir", tmpDir).Msg("failed to remove temp dir")
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	page := strconv.Itoa(pageNr)
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-f", page, "-l", page,
		"-r", strconv.Itoa(e.cfg.DPI),
		"-png", "-singlefile",
		path, prefix)
	if err != nil {
		return "", fmt.Errorf("pdftoppm: %w: %s", err, strings.TrimSpace(string(errb)))
	}
	return e.tesseract(ctx, prefix+".png")
}
