package driven

import (
	"context"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
)

// Extractor turns raw upload bytes of one media kind into plain text.
// Each extractor handles specific MIME types (e.g., PDF, images) or
// filename extensions for formats that are not reliably typed.
type Extractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	// A trailing "/" entry matches the whole top-level type
	// (e.g. "image/" matches image/png and image/jpeg).
	SupportedMIMETypes() []string

	// SupportedExtensions returns filename extensions used as a
	// fallback when the declared content type does not match.
	SupportedExtensions() []string

	// Extract converts the upload into plain text. Page provenance
	// markers are embedded in the text for multi-page formats.
	Extract(ctx context.Context, upload *domain.RawUpload) (string, error)
}

// ExtractorRegistry selects the extractor for an upload.
type ExtractorRegistry interface {
	// Resolve returns the extractor for the upload's declared content
	// type, falling back to the filename extension. Returns
	// domain.ErrUnsupportedFormat when nothing matches.
	Resolve(upload *domain.RawUpload) (Extractor, error)
}
