// Package docx extracts paragraph text from word-processor documents.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles DOCX documents. No OCR is involved; only the
// machine-readable paragraph text is extracted.
type Extractor struct{}

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
}

// SupportedExtensions returns filename extensions for fallback
// matching. Browsers frequently upload DOCX with a generic content
// type, so the extension is the reliable signal.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".docx"}
}

// Extract stages the upload to a temporary file, parses
// word/document.xml and returns the non-empty paragraphs joined by
// newlines, in document order. The temporary file is removed on every
// exit path.
func (e *Extractor) Extract(_ context.Context, upload *domain.RawUpload) (string, error) {
	tmp, err := os.CreateTemp("", "upload-*.docx")
	if err != nil {
		return "", fmt.Errorf("stage %s: %w", upload.Filename, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(upload.Content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("stage %s: %w", upload.Filename, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("stage %s: %w", upload.Filename, err)
	}

	reader, err := zip.OpenReader(tmpPath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", upload.Filename, domain.ErrInvalidInput)
	}
	defer reader.Close()

	text, err := extractDocumentText(&reader.Reader)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", upload.Filename, err)
	}
	return text, nil
}

// extractDocumentText extracts paragraph text from word/document.xml.
func extractDocumentText(reader *zip.Reader) (string, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", domain.ErrInvalidInput
		}
		defer rc.Close()

		return parseParagraphs(rc)
	}

	return "", domain.ErrInvalidInput
}

// parseParagraphs walks the document XML collecting text runs (<w:t>)
// per paragraph (<w:p>), skipping paragraphs with no text.
func parseParagraphs(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	var inText bool

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", domain.ErrInvalidInput
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				current.WriteByte('\t')
			case "br":
				current.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if para := current.String(); strings.TrimSpace(para) != "" {
					paragraphs = append(paragraphs, para)
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
