// Package pdf extracts text from PDF uploads: machine-readable page
// text plus OCR of every raster image embedded in each page.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driven"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF documents page by page. Partial extraction is
// acceptable: a single embedded image failing OCR contributes empty
// text and never aborts the page or the document.
type Extractor struct {
	ocr driven.OCRService
}

// New creates a new PDF extractor.
func New(ocr driven.OCRService) *Extractor {
	return &Extractor{ocr: ocr}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"application/pdf"}
}

// SupportedExtensions returns filename extensions for fallback matching.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

// Extract walks the document in page order. Each page contributes its
// machine-readable text tagged with the page number, then the OCR text
// of its embedded images, so provenance stays traceable in the
// extracted output.
func (e *Extractor) Extract(ctx context.Context, upload *domain.RawUpload) (string, error) {
	entry, err := domain.LookupLanguage(upload.Language)
	if err != nil {
		return "", err
	}

	reader, err := openReader(upload.Content)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", upload.Filename, domain.ErrInvalidInput)
	}

	var parts []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := pageText(page)
		if err != nil {
			logger.Warn("text extraction failed on page %d of %s: %v", pageNum, upload.Filename, err)
		}
		if strings.TrimSpace(text) != "" {
			parts = append(parts, fmt.Sprintf("\n--- Page %d ---\n%s", pageNum, text))
		}

		for _, imageData := range pageImages(page) {
			ocrText := e.transcribe(ctx, imageData, entry.OCRInstruction, upload.Filename, pageNum)
			if ocrText != "" {
				parts = append(parts, fmt.Sprintf("\n--- Page %d Image ---\n%s", pageNum, ocrText))
			}
		}
	}

	return strings.Join(parts, "\n"), nil
}

// transcribe re-encodes one embedded image as PNG and runs OCR on it.
// Every failure is downgraded to empty text: partial extraction beats
// losing the whole document over one bad image.
func (e *Extractor) transcribe(ctx context.Context, imageData []byte, instruction, filename string, pageNum int) string {
	pngImage, err := reencodePNG(imageData)
	if err != nil {
		logger.Warn("image processing failed on page %d of %s: %v", pageNum, filename, err)
		return ""
	}

	text, err := e.ocr.ExtractText(ctx, pngImage, instruction)
	if err != nil {
		logger.Warn("ocr failed on page %d of %s: %v", pageNum, filename, err)
		return ""
	}
	return text
}

// openReader parses the document. The parser panics on malformed input
// by design, so the panic is converted to an error here.
func openReader(content []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()
	return pdf.NewReader(bytes.NewReader(content), int64(len(content)))
}

// pageText extracts the machine-readable text of one page, converting
// parser panics to errors.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()
	return page.GetPlainText(nil)
}

// pageImages returns the raw stream bytes of every image XObject in
// the page resources, in resource order. Unreadable streams are
// skipped; the caller treats each image independently anyway.
func pageImages(page pdf.Page) [][]byte {
	resources := safeValue(func() pdf.Value { return page.Resources() })
	if resources.Kind() != pdf.Dict {
		return nil
	}
	xobjects := safeValue(func() pdf.Value { return resources.Key("XObject") })
	if xobjects.Kind() != pdf.Dict {
		return nil
	}

	var images [][]byte
	for _, name := range xobjects.Keys() {
		data, ok := imageStream(xobjects, name)
		if ok {
			images = append(images, data)
		}
	}
	return images
}

// imageStream reads one XObject stream if it is an image, converting
// parser panics (unsupported stream filters and the like) into a skip.
func imageStream(xobjects pdf.Value, name string) (data []byte, ok bool) {
	defer func() {
		if recover() != nil {
			data, ok = nil, false
		}
	}()

	object := xobjects.Key(name)
	if object.Kind() != pdf.Stream || object.Key("Subtype").Name() != "Image" {
		return nil, false
	}

	raw, err := io.ReadAll(object.Reader())
	if err != nil || len(raw) == 0 {
		return nil, false
	}
	return raw, true
}

// safeValue shields a Value accessor from parser panics.
func safeValue(fn func() pdf.Value) (v pdf.Value) {
	defer func() {
		if recover() != nil {
			v = pdf.Value{}
		}
	}()
	return fn()
}

// reencodePNG normalises an embedded image to the PNG payload the OCR
// capability expects.
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
