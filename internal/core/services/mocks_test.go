package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driven"
)

// memoryRepo is an in-memory IndexRepository. First complete Put wins,
// matching the persistence adapters.
type memoryRepo struct {
	mu      sync.Mutex
	indices map[string]*domain.Index
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{indices: make(map[string]*domain.Index)}
}

func (r *memoryRepo) Exists(_ context.Context, docID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.indices[docID]
	return ok, nil
}

func (r *memoryRepo) Put(_ context.Context, docID string, index *domain.Index) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.indices[docID]; ok {
		return nil
	}
	r.indices[docID] = index
	return nil
}

func (r *memoryRepo) Get(_ context.Context, docID string) (*domain.Index, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	index, ok := r.indices[docID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", docID, domain.ErrIndexNotFound)
	}
	return index, nil
}

func (r *memoryRepo) Close() error { return nil }

// vocabulary for the deterministic fake embedder. A final bias
// dimension keeps vectors non-zero for texts with no vocabulary hits.
var fakeVocabulary = []string{"sky", "blue", "color", "ocean", "vast"}

// fakeEmbedder embeds text as vocabulary word counts, so similarity
// behaves plausibly in retrieval tests without a model.
type fakeEmbedder struct {
	mu         sync.Mutex
	embedCalls int
	err        error
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	f.embedCalls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	lower := strings.ToLower(text)
	vector := make([]float32, len(fakeVocabulary)+1)
	for i, word := range fakeVocabulary {
		vector[i] = float32(strings.Count(lower, word))
	}
	vector[len(fakeVocabulary)] = 0.1
	return vector, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector, err := f.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vector
	}
	return vectors, nil
}

func (f *fakeEmbedder) Dimensions() int   { return len(fakeVocabulary) + 1 }
func (f *fakeEmbedder) ModelName() string { return "fake-embed" }
func (f *fakeEmbedder) Close() error      { return nil }

// fakeGenerator records the prompt it was handed.
type fakeGenerator struct {
	system string
	user   string
	answer string
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, system, user string) (string, error) {
	f.system = system
	f.user = user
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func (f *fakeGenerator) ModelName() string { return "fake-llm" }
func (f *fakeGenerator) Close() error      { return nil }

// stubExtractor returns fixed text and counts invocations.
type stubExtractor struct {
	mu    sync.Mutex
	calls int
	text  string
	err   error
}

func (s *stubExtractor) SupportedMIMETypes() []string  { return []string{"text/plain"} }
func (s *stubExtractor) SupportedExtensions() []string { return []string{".txt"} }

func (s *stubExtractor) Extract(context.Context, *domain.RawUpload) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.text, s.err
}

// stubRegistry resolves every upload to one extractor, or fails.
type stubRegistry struct {
	extractor driven.Extractor
	err       error
}

func (s *stubRegistry) Resolve(*domain.RawUpload) (driven.Extractor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.extractor, nil
}
