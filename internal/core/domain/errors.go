package domain

import "errors"

// Domain errors represent pipeline failures.
// These are distinct from infrastructure errors.
var (
	// ErrUnsupportedFormat indicates an unrecognised media kind at extraction.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtractionFailed indicates no usable text could be extracted
	// from the document.
	ErrExtractionFailed = errors.New("no text could be extracted from the document")

	// ErrIndexNotFound indicates a load against a doc_id with no
	// persisted index.
	ErrIndexNotFound = errors.New("index not found")

	// ErrDocumentNotFound indicates a query against a doc_id that was
	// never ingested.
	ErrDocumentNotFound = errors.New("no processed document found")

	// ErrUnsupportedLanguage indicates a language tag absent from the
	// prompt registry. There is no fallback language.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrCapabilityFailure indicates an OCR, embedding or generation
	// call failed. The core never retries; callers decide.
	ErrCapabilityFailure = errors.New("capability failure")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
