package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/chunker"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driven"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driving"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService is the write path: extract, chunk, embed, persist.
type IngestService struct {
	registry driven.ExtractorRegistry
	splitter *chunker.Splitter
	embedder driven.EmbeddingService
	repo     driven.IndexRepository
}

// NewIngestService creates a new ingestion pipeline.
func NewIngestService(
	registry driven.ExtractorRegistry,
	splitter *chunker.Splitter,
	embedder driven.EmbeddingService,
	repo driven.IndexRepository,
) *IngestService {
	return &IngestService{
		registry: registry,
		splitter: splitter,
		embedder: embedder,
		repo:     repo,
	}
}

// Ingest processes one upload and returns its content-derived doc_id.
//
// Re-ingesting identical bytes short-circuits on the persisted index,
// whatever the filename or language of the second upload: identity is
// content-only. An ingestion either returns a doc_id backed by a
// complete persisted index or fails with nothing left on disk; the
// repository's atomic Put is the last step.
func (s *IngestService) Ingest(ctx context.Context, upload *domain.RawUpload) (string, error) {
	logger.Section("Ingestion")
	logger.Info("Starting ingestion for file: %s", upload.Filename)

	if _, err := domain.LookupLanguage(upload.Language); err != nil {
		logger.Error("Ingestion failed for %s: %v", upload.Filename, err)
		return "", fmt.Errorf("language %q: %w", upload.Language, err)
	}

	docID := domain.ComputeDocID(upload.Content)

	exists, err := s.repo.Exists(ctx, docID)
	if err != nil {
		logger.Error("Ingestion failed for %s: %v", upload.Filename, err)
		return "", fmt.Errorf("dedup check for %s: %w", upload.Filename, err)
	}
	if exists {
		logger.Info("Document %s already processed. Skipping.", docID)
		return docID, nil
	}

	extractor, err := s.registry.Resolve(upload)
	if err != nil {
		logger.Error("Ingestion failed for %s: %v", upload.Filename, err)
		return "", err
	}

	text, err := extractor.Extract(ctx, upload)
	if err != nil {
		logger.Error("Ingestion failed for %s: %v", upload.Filename, err)
		return "", fmt.Errorf("extract %s: %w", upload.Filename, err)
	}
	if strings.TrimSpace(text) == "" {
		logger.Error("Ingestion failed for %s: empty extraction", upload.Filename)
		return "", fmt.Errorf("%s: %w", upload.Filename, domain.ErrExtractionFailed)
	}
	logger.Debug("Extracted %d bytes of text from %s", len(text), upload.Filename)

	chunks := s.splitter.Split(text, map[string]string{
		"source":   upload.Filename,
		"language": upload.Language,
	})
	logger.Debug("Split %s into %d chunks", upload.Filename, len(chunks))

	index, err := s.buildIndex(ctx, chunks)
	if err != nil {
		logger.Error("Ingestion failed for %s: %v", upload.Filename, err)
		return "", fmt.Errorf("index %s: %w", upload.Filename, err)
	}

	if err := s.repo.Put(ctx, docID, index); err != nil {
		logger.Error("Ingestion failed for %s: %v", upload.Filename, err)
		return "", fmt.Errorf("persist index for %s: %w", upload.Filename, err)
	}

	logger.Info("Successfully processed and saved document %s", docID)
	return docID, nil
}

// buildIndex embeds every chunk and assembles the in-memory index,
// preserving chunk order.
func (s *IngestService) buildIndex(ctx context.Context, chunks []domain.Chunk) (*domain.Index, error) {
	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, errors.Join(domain.ErrCapabilityFailure, err)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embedding count mismatch: %d chunks, %d vectors", len(chunks), len(vectors))
	}

	index := &domain.Index{
		Model:      s.embedder.ModelName(),
		Dimensions: s.embedder.Dimensions(),
		Entries:    make([]domain.IndexEntry, len(chunks)),
	}
	for i := range chunks {
		index.Entries[i] = domain.IndexEntry{
			Content: chunks[i].Content,
			Vector:  vectors[i],
		}
	}
	return index, nil
}
