package ollama

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llava", req.Model)
		assert.False(t, req.Stream)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "Read all text in this image.", req.Messages[0].Content)
		require.Len(t, req.Messages[0].Images, 1)
		assert.Equal(t, base64.StdEncoding.EncodeToString(png), req.Messages[0].Images[0])

		json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]any{"content": "  Ocean is vast.\n"},
			"done":    true,
		})
	}))
	defer server.Close()

	service := NewOCRService(Config{BaseURL: server.URL})

	text, err := service.ExtractText(context.Background(), png, "Read all text in this image.")
	require.NoError(t, err)
	assert.Equal(t, "Ocean is vast.", text)
}

func TestExtractTextServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	service := NewOCRService(Config{BaseURL: server.URL})

	_, err := service.ExtractText(context.Background(), []byte("img"), "read")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
