package driving

import (
	"context"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
)

// IngestService is the write path: upload bytes in, doc_id out.
type IngestService interface {
	// Ingest extracts, chunks, embeds and persists the upload, then
	// returns its content-derived doc_id. Re-ingesting identical bytes
	// returns the same doc_id without re-processing.
	Ingest(ctx context.Context, upload *domain.RawUpload) (string, error)
}

// QueryService is the read path: doc_id plus question in, answer out.
type QueryService interface {
	// Query retrieves the most relevant chunks for the question from
	// the document's index and generates an answer in the requested
	// language.
	Query(ctx context.Context, docID, question, language string) (string, error)
}
