package extractors

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry selects the extractor for an upload by declared content
// type first, filename extension second.
type Registry struct {
	extractors []driven.Extractor
}

// NewRegistry creates a registry with the given extractors.
// Registration order is the tie-break when several extractors claim the
// same type.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	return &Registry{extractors: extractors}
}

// Register adds an extractor to the registry.
func (r *Registry) Register(extractor driven.Extractor) {
	r.extractors = append(r.extractors, extractor)
}

// Resolve returns the extractor for the upload.
// Returns domain.ErrUnsupportedFormat naming the declared type when
// nothing matches.
func (r *Registry) Resolve(upload *domain.RawUpload) (driven.Extractor, error) {
	mediaType := normaliseMediaType(upload.ContentType)

	for _, extractor := range r.extractors {
		for _, supported := range extractor.SupportedMIMETypes() {
			// A trailing "/" claims the whole top-level type.
			if strings.HasSuffix(supported, "/") {
				if strings.HasPrefix(mediaType, supported) {
					return extractor, nil
				}
				continue
			}
			if mediaType == supported {
				return extractor, nil
			}
		}
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if ext != "" {
		for _, extractor := range r.extractors {
			for _, supported := range extractor.SupportedExtensions() {
				if ext == supported {
					return extractor, nil
				}
			}
		}
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, upload.ContentType)
}

// normaliseMediaType strips parameters ("; charset=...") and case from
// a declared content type.
func normaliseMediaType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}
