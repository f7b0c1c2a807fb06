package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// DocIDPrefix precedes the hex content hash in every document identifier.
const DocIDPrefix = "doc_"

// ComputeDocID derives the document identifier from raw file content.
// Identical bytes always produce the same identifier regardless of
// filename or upload time; this is the deduplication key.
func ComputeDocID(content []byte) string {
	sum := sha256.Sum256(content)
	return DocIDPrefix + hex.EncodeToString(sum[:])
}

// RawUpload is an uploaded file awaiting ingestion.
// It is consumed by the ingestion pipeline and never persisted as-is.
type RawUpload struct {
	// Content is the raw file bytes.
	Content []byte

	// ContentType is the declared media type (e.g. "application/pdf").
	ContentType string

	// Filename is the original upload name. Used for extension fallback
	// and as chunk provenance metadata, never for identity.
	Filename string

	// Language is the requested language tag. Must exist in the
	// language registry.
	Language string
}

// Chunk is a bounded text span produced by the chunker, the unit of
// embedding and retrieval.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// Content is the text content of this chunk, including the overlap
	// prefix carried over from the previous chunk.
	Content string

	// Position is the ordinal position within the document.
	Position int

	// Metadata contains chunk provenance (source filename, language).
	Metadata map[string]string
}

// IndexEntry pairs a chunk's text with its embedding vector.
type IndexEntry struct {
	Content string    `json:"content"`
	Vector  []float32 `json:"vector"`
}

// Index is the similarity-search structure for one document.
// Entries preserve chunk order; an index is immutable once persisted.
type Index struct {
	// Model is the embedding model that produced the vectors.
	Model string `json:"model"`

	// Dimensions is the embedding vector size.
	Dimensions int `json:"dimensions"`

	// Entries holds one embedded chunk per element, in chunk order.
	Entries []IndexEntry `json:"entries"`
}
