package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Provider selects which backend serves the model capabilities.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Storage selects the index persistence backend.
const (
	StorageFS     = "fs"
	StorageSQLite = "sqlite"
)

// Config holds the full application configuration, loaded from a TOML
// file with environment variable overrides for secrets.
type Config struct {
	IndexRoot string `toml:"index_root"`
	Storage   string `toml:"storage"`
	Provider  string `toml:"provider"`

	Chunking  ChunkingConfig  `toml:"chunking"`
	Retrieval RetrievalConfig `toml:"retrieval"`
	OpenAI    OpenAIConfig    `toml:"openai"`
	Ollama    OllamaConfig    `toml:"ollama"`
}

type ChunkingConfig struct {
	Size    int `toml:"size"`
	Overlap int `toml:"overlap"`
}

type RetrievalConfig struct {
	TopK int `toml:"top_k"`
}

type OpenAIConfig struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	EmbeddingModel string `toml:"embedding_model"`
	ChatModel      string `toml:"chat_model"`
	VisionModel    string `toml:"vision_model"`
}

type OllamaConfig struct {
	BaseURL        string `toml:"base_url"`
	EmbeddingModel string `toml:"embedding_model"`
	ChatModel      string `toml:"chat_model"`
	VisionModel    string `toml:"vision_model"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		IndexRoot: "index",
		Storage:   StorageFS,
		Provider:  ProviderOpenAI,
		Chunking: ChunkingConfig{
			Size:    500,
			Overlap: 200,
		},
		Retrieval: RetrievalConfig{
			TopK: 3,
		},
		OpenAI: OpenAIConfig{
			BaseURL:        "https://api.openai.com/v1",
			EmbeddingModel: "text-embedding-ada-002",
			ChatModel:      "gpt-4o-mini",
			VisionModel:    "gpt-4o",
		},
		Ollama: OllamaConfig{
			BaseURL:        "http://localhost:11434",
			EmbeddingModel: "nomic-embed-text",
			ChatModel:      "llama3",
			VisionModel:    "llava",
		},
	}
}

// Load reads configuration from path. A missing file is not an error;
// defaults apply. Environment variables override file values for
// credentials and endpoints.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv layers environment overrides on top of file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		c.OpenAI.BaseURL = v
	}
	if v := os.Getenv("OLLAMA_BASE_URL"); v != "" {
		c.Ollama.BaseURL = v
	}
	if v := os.Getenv("RAGCHAT_INDEX_ROOT"); v != "" {
		c.IndexRoot = v
	}
}

// Validate checks the configuration for values the pipeline cannot
// work with.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderOllama:
	default:
		return fmt.Errorf("unknown provider %q (want %q or %q)", c.Provider, ProviderOpenAI, ProviderOllama)
	}

	switch c.Storage {
	case StorageFS, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage %q (want %q or %q)", c.Storage, StorageFS, StorageSQLite)
	}

	if c.Chunking.Size <= 0 {
		return fmt.Errorf("chunking.size must be positive, got %d", c.Chunking.Size)
	}
	if c.Chunking.Overlap < 0 {
		return fmt.Errorf("chunking.overlap must not be negative, got %d", c.Chunking.Overlap)
	}
	if c.Retrieval.TopK <= 0 {
		return fmt.Errorf("retrieval.top_k must be positive, got %d", c.Retrieval.TopK)
	}
	if c.IndexRoot == "" {
		return fmt.Errorf("index_root must not be empty")
	}
	return nil
}

// SQLitePath returns the path of the SQLite database file under the
// index root.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.IndexRoot, "index.db")
}

// DefaultPath returns the conventional config file location,
// ragchat.toml in the working directory.
func DefaultPath() string {
	return "ragchat.toml"
}
