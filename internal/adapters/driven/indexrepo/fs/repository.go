// Package fs provides a filesystem-backed index repository.
// One directory per doc_id under a root directory; directory existence
// is the deduplication signal for the ingestion pipeline.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driven"
)

// Ensure Repository implements the interface.
var _ driven.IndexRepository = (*Repository)(nil)

// indexFileName is the serialized index inside each doc_id directory.
const indexFileName = "index.json"

// Repository persists one vector index per document as
// root/<doc_id>/index.json.
type Repository struct {
	root string
}

// NewRepository creates a filesystem repository rooted at root,
// creating the directory if needed.
func NewRepository(root string) (*Repository, error) {
	if root == "" {
		return nil, fmt.Errorf("index root: %w", domain.ErrInvalidInput)
	}
	if err := os.MkdirAll(root, 0o700); err != nil {
		return nil, fmt.Errorf("create index root: %w", err)
	}
	return &Repository{root: root}, nil
}

// Exists reports whether an index directory is persisted for the doc_id.
func (r *Repository) Exists(_ context.Context, docID string) (bool, error) {
	if err := validateDocID(docID); err != nil {
		return false, err
	}

	info, err := os.Stat(filepath.Join(r.root, docID))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat index directory: %w", err)
	}
	return info.IsDir(), nil
}

// Put persists the index under the doc_id. The index is written to a
// staging directory and renamed into place, so concurrent readers only
// ever observe a complete index. When two writers race, the first
// rename wins and the loser's staging directory is discarded;
// persisted indices are never overwritten.
func (r *Repository) Put(ctx context.Context, docID string, index *domain.Index) error {
	if err := validateDocID(docID); err != nil {
		return err
	}
	if index == nil {
		return fmt.Errorf("nil index: %w", domain.ErrInvalidInput)
	}

	stage := filepath.Join(r.root, ".tmp-"+uuid.New().String())
	if err := os.MkdirAll(stage, 0o700); err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	defer os.RemoveAll(stage)

	payload, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(stage, indexFileName), payload, 0o600); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	final := filepath.Join(r.root, docID)
	if err := os.Rename(stage, final); err != nil {
		// A concurrent writer may have completed first. Their index
		// was built from the same content, so losing the race is fine.
		if exists, existsErr := r.Exists(ctx, docID); existsErr == nil && exists {
			return nil
		}
		return fmt.Errorf("persist index for %s: %w", docID, err)
	}
	return nil
}

// Get loads the index for the doc_id.
func (r *Repository) Get(_ context.Context, docID string) (*domain.Index, error) {
	if err := validateDocID(docID); err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(filepath.Join(r.root, docID, indexFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", docID, domain.ErrIndexNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read index for %s: %w", docID, err)
	}

	var index domain.Index
	if err := json.Unmarshal(payload, &index); err != nil {
		return nil, fmt.Errorf("decode index for %s: %w", docID, err)
	}
	return &index, nil
}

// Close releases resources.
func (r *Repository) Close() error {
	return nil
}

// validateDocID rejects identifiers that could escape the index root.
func validateDocID(docID string) error {
	if !strings.HasPrefix(docID, domain.DocIDPrefix) ||
		strings.ContainsAny(docID, `/\`) ||
		strings.Contains(docID, "..") {
		return fmt.Errorf("doc id %q: %w", docID, domain.ErrInvalidInput)
	}
	return nil
}
