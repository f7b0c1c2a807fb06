// Package image extracts text from standalone image uploads by sending
// the whole image through the OCR capability.
package image

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles image uploads. The image is the sole content, so
// unlike embedded PDF images an OCR failure here propagates.
type Extractor struct {
	ocr driven.OCRService
}

// New creates a new image extractor.
func New(ocr driven.OCRService) *Extractor {
	return &Extractor{ocr: ocr}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"image/"}
}

// SupportedExtensions returns filename extensions for fallback matching.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif"}
}

// Extract decodes the upload, re-encodes it as PNG and transcribes it
// with the language-specific OCR instruction.
func (e *Extractor) Extract(ctx context.Context, upload *domain.RawUpload) (string, error) {
	entry, err := domain.LookupLanguage(upload.Language)
	if err != nil {
		return "", err
	}

	pngImage, err := reencodePNG(upload.Content)
	if err != nil {
		return "", fmt.Errorf("decode image %s: %w", upload.Filename, err)
	}

	text, err := e.ocr.ExtractText(ctx, pngImage, entry.OCRInstruction)
	if err != nil {
		return "", fmt.Errorf("ocr %s: %w", upload.Filename, err)
	}
	return text, nil
}

// reencodePNG normalises any supported image format to the PNG payload
// the OCR capability expects.
func reencodePNG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
