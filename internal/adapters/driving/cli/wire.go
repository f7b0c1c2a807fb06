package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/adapters/driven/embedding/openai"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/adapters/driven/indexrepo/fs"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/adapters/driven/indexrepo/sqlite"
	ollamallm "github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/adapters/driven/llm/ollama"
	openaillm "github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/adapters/driven/llm/openai"
	ollamaocr "github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/adapters/driven/ocr/ollama"
	openaiocr "github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/adapters/driven/ocr/openai"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/chunker"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/config"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driven"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driving"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/services"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/extractors"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/extractors/docx"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/extractors/image"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/extractors/pdf"
)

// buildServices assembles the full pipeline from configuration:
// capability adapters, extractors, persistence, and the two driving
// services.
func buildServices(cfg *config.Config) (driving.IngestService, driving.QueryService, func() error, error) {
	embedder, generator, ocr, err := buildCapabilities(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	repo, err := buildRepository(cfg)
	if err != nil {
		_ = embedder.Close()
		_ = generator.Close()
		_ = ocr.Close()
		return nil, nil, nil, err
	}

	registry := extractors.NewRegistry(
		pdf.New(ocr),
		image.New(ocr),
		docx.New(),
	)

	splitter := chunker.New(
		chunker.WithChunkSize(cfg.Chunking.Size),
		chunker.WithOverlap(cfg.Chunking.Overlap),
	)

	ingest := services.NewIngestService(registry, splitter, embedder, repo)
	query := services.NewQueryService(repo, embedder, generator)
	query.SetTopK(cfg.Retrieval.TopK)

	closer := func() error {
		return errors.Join(
			embedder.Close(),
			generator.Close(),
			ocr.Close(),
			repo.Close(),
		)
	}
	return ingest, query, closer, nil
}

func buildCapabilities(cfg *config.Config) (driven.EmbeddingService, driven.GenerationService, driven.OCRService, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		embedder, err := openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.EmbeddingModel,
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("embedding service: %w", err)
		}

		generator, err := openaillm.NewGenerationService(openaillm.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.ChatModel,
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("generation service: %w", err)
		}

		ocr, err := openaiocr.NewOCRService(openaiocr.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.VisionModel,
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("ocr service: %w", err)
		}
		return embedder, generator, ocr, nil

	case config.ProviderOllama:
		embedder := ollama.NewEmbeddingService(ollama.Config{
			BaseURL: cfg.Ollama.BaseURL,
			Model:   cfg.Ollama.EmbeddingModel,
		})
		generator := ollamallm.NewGenerationService(ollamallm.Config{
			BaseURL: cfg.Ollama.BaseURL,
			Model:   cfg.Ollama.ChatModel,
		})
		ocr := ollamaocr.NewOCRService(ollamaocr.Config{
			BaseURL: cfg.Ollama.BaseURL,
			Model:   cfg.Ollama.VisionModel,
		})
		return embedder, generator, ocr, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

func buildRepository(cfg *config.Config) (driven.IndexRepository, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		if err := os.MkdirAll(cfg.IndexRoot, 0o755); err != nil {
			return nil, fmt.Errorf("create index root: %w", err)
		}
		return sqlite.NewRepository(cfg.SQLitePath())
	default:
		return fs.NewRepository(cfg.IndexRoot)
	}
}
