// Package openai provides an OCR service adapter backed by a
// vision-capable model on an OpenAI-compatible chat completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driven"
)

// Ensure OCRService implements the interface.
var _ driven.OCRService = (*OCRService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 120 * time.Second

	// Transcriptions are bounded; images rarely carry more text.
	defaultMaxTokens = 2000
)

// Config holds configuration for the vision OCR service.
type Config struct {
	// APIKey is the API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	// Can be changed for Azure OpenAI or compatible APIs.
	BaseURL string

	// Model is the vision model to use (default: gpt-4o-mini).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// OCRService transcribes images using a vision model.
type OCRService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// visionRequest is the /chat/completions request format with
// multi-part user content.
type visionRequest struct {
	Model     string          `json:"model"`
	Messages  []visionMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type visionMessage struct {
	Role    string       `json:"role"`
	Content []visionPart `json:"content"`
}

type visionPart struct {
	Type     string       `json:"type"`
	Text     string       `json:"text,omitempty"`
	ImageURL *imagePayload `json:"image_url,omitempty"`
}

type imagePayload struct {
	URL string `json:"url"`
}

// visionResponse is the /chat/completions response format.
type visionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewOCRService creates a new vision OCR service.
func NewOCRService(cfg Config) (*OCRService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &OCRService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}, nil
}

// ExtractText transcribes the PNG image using the language-specific
// instruction. The image travels as a base64 data URL in the user
// content, alongside the instruction text.
func (s *OCRService) ExtractText(ctx context.Context, pngImage []byte, instruction string) (string, error) {
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngImage)

	jsonBody, err := json.Marshal(visionRequest{
		Model: s.model,
		Messages: []visionMessage{{
			Role: "user",
			Content: []visionPart{
				{Type: "text", Text: instruction},
				{Type: "image_url", ImageURL: &imagePayload{URL: dataURL}},
			},
		}},
		MaxTokens: defaultMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/chat/completions",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var visionResp visionResponse
	if err := json.Unmarshal(body, &visionResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if visionResp.Error != nil {
		return "", fmt.Errorf("openai error: %s", visionResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai error (status %d): %s", resp.StatusCode, string(body))
	}

	if len(visionResp.Choices) == 0 {
		return "", fmt.Errorf("openai: no transcription returned")
	}

	return strings.TrimSpace(visionResp.Choices[0].Message.Content), nil
}

// ModelName returns the name of the vision model being used.
func (s *OCRService) ModelName() string {
	return s.model
}

// Close releases resources.
func (s *OCRService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
