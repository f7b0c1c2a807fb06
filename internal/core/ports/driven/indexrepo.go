package driven

import (
	"context"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
)

// IndexRepository persists one vector index per document, keyed by
// doc_id. Existence of a key is the deduplication signal used by the
// ingestion pipeline.
//
// Put must be atomic: a concurrent reader either sees no index or a
// complete one, never a partial write. Putting an index for a doc_id
// that already exists is not an error; the first complete write wins
// and later redundant writes are discarded.
type IndexRepository interface {
	// Exists reports whether an index is persisted for the doc_id.
	Exists(ctx context.Context, docID string) (bool, error)

	// Put persists the index under the doc_id.
	Put(ctx context.Context, docID string, index *domain.Index) error

	// Get loads the index for the doc_id.
	// Returns domain.ErrIndexNotFound when absent.
	Get(ctx context.Context, docID string) (*domain.Index, error)

	// Close releases resources.
	Close() error
}
