package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driven"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driving"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/logger"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/vectorindex"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// DefaultTopK is the number of chunks retrieved as answer context.
const DefaultTopK = 3

// QueryService is the read path: retrieve relevant chunks, then
// generate an answer from them.
type QueryService struct {
	repo      driven.IndexRepository
	embedder  driven.EmbeddingService
	generator driven.GenerationService
	topK      int
}

// NewQueryService creates a new query pipeline.
func NewQueryService(
	repo driven.IndexRepository,
	embedder driven.EmbeddingService,
	generator driven.GenerationService,
) *QueryService {
	return &QueryService{
		repo:      repo,
		embedder:  embedder,
		generator: generator,
		topK:      DefaultTopK,
	}
}

// SetTopK overrides the number of chunks retrieved as answer context.
// Non-positive values are ignored.
func (s *QueryService) SetTopK(k int) {
	if k > 0 {
		s.topK = k
	}
}

// Query answers a question against one ingested document, in the
// requested language.
func (s *QueryService) Query(ctx context.Context, docID, question, language string) (string, error) {
	logger.Section("Query")
	logger.Info("Querying document %s with question: %q", docID, question)

	entry, err := domain.LookupLanguage(language)
	if err != nil {
		logger.Error("Query failed for %s: %v", docID, err)
		return "", fmt.Errorf("language %q: %w", language, err)
	}

	exists, err := s.repo.Exists(ctx, docID)
	if err != nil {
		logger.Error("Query failed for %s: %v", docID, err)
		return "", fmt.Errorf("lookup %s: %w", docID, err)
	}
	if !exists {
		logger.Error("Query failed for %s: no persisted index", docID)
		return "", fmt.Errorf("%s: %w", docID, domain.ErrDocumentNotFound)
	}

	index, err := s.repo.Get(ctx, docID)
	if err != nil {
		logger.Error("Query failed for %s: %v", docID, err)
		return "", fmt.Errorf("load index for %s: %w", docID, err)
	}

	queryVector, err := s.embedder.Embed(ctx, question)
	if err != nil {
		logger.Error("Query failed for %s: %v", docID, err)
		return "", errors.Join(domain.ErrCapabilityFailure, err)
	}

	chunks := vectorindex.Search(index, queryVector, s.topK)
	contextText := strings.Join(chunks, "\n")
	logger.Debug("Retrieved %d chunks (%d bytes of context)", len(chunks), len(contextText))

	userContent := strings.NewReplacer(
		"{context}", contextText,
		"{question}", question,
	).Replace(entry.QAUser)

	answer, err := s.generator.Generate(ctx, entry.QASystem, userContent)
	if err != nil {
		logger.Error("Query failed for %s: %v", docID, err)
		return "", errors.Join(domain.ErrCapabilityFailure, err)
	}

	logger.Info("Generated answer for document %s", docID)
	return answer, nil
}
