// Package sqlite provides a SQLite-backed index repository.
// It is a drop-in replacement for the filesystem repository wherever a
// single-file store is preferable to a directory tree.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/ports/driven"
)

// Ensure Repository implements the interface.
var _ driven.IndexRepository = (*Repository)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS indexes (
	doc_id     TEXT PRIMARY KEY,
	model      TEXT NOT NULL,
	dimensions INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS index_entries (
	doc_id    TEXT NOT NULL REFERENCES indexes(doc_id) ON DELETE CASCADE,
	position  INTEGER NOT NULL,
	content   TEXT NOT NULL,
	embedding BLOB NOT NULL,
	PRIMARY KEY (doc_id, position)
);
`

// Repository stores per-document vector indices in a SQLite database.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository opens (or creates) the database at dbPath.
func NewRepository(dbPath string) (*Repository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path: %w", domain.ErrInvalidInput)
	}

	// WAL mode keeps concurrent ingest and query calls from blocking
	// each other on the same file.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Repository{db: db, path: dbPath}, nil
}

// Exists reports whether an index is persisted for the doc_id.
func (r *Repository) Exists(ctx context.Context, docID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM indexes WHERE doc_id = ?", docID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking index existence: %w", err)
	}
	return true, nil
}

// Put persists the index under the doc_id inside a single transaction,
// so a reader either sees the complete index or none of it. When two
// writers race, the first committed row wins and the loser's
// transaction is discarded without error.
func (r *Repository) Put(ctx context.Context, docID string, index *domain.Index) error {
	if index == nil {
		return fmt.Errorf("nil index: %w", domain.ErrInvalidInput)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO indexes (doc_id, model, dimensions, created_at) VALUES (?, ?, ?, ?) ON CONFLICT(doc_id) DO NOTHING",
		docID, index.Model, index.Dimensions, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting index for %s: %w", docID, err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("inserting index for %s: %w", docID, err)
	}
	if inserted == 0 {
		// A concurrent writer for the same content already persisted.
		return nil
	}

	for position, entry := range index.Entries {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO index_entries (doc_id, position, content, embedding) VALUES (?, ?, ?, ?)",
			docID, position, entry.Content, encodeVector(entry.Vector),
		); err != nil {
			return fmt.Errorf("inserting entry %d for %s: %w", position, docID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing index for %s: %w", docID, err)
	}
	return nil
}

// Get loads the index for the doc_id.
func (r *Repository) Get(ctx context.Context, docID string) (*domain.Index, error) {
	index := &domain.Index{}
	err := r.db.QueryRowContext(ctx,
		"SELECT model, dimensions FROM indexes WHERE doc_id = ?", docID,
	).Scan(&index.Model, &index.Dimensions)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s: %w", docID, domain.ErrIndexNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading index for %s: %w", docID, err)
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT content, embedding FROM index_entries WHERE doc_id = ? ORDER BY position", docID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading entries for %s: %w", docID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var content string
		var blob []byte
		if err := rows.Scan(&content, &blob); err != nil {
			return nil, fmt.Errorf("scanning entry for %s: %w", docID, err)
		}
		index.Entries = append(index.Entries, domain.IndexEntry{
			Content: content,
			Vector:  decodeVector(blob),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading entries for %s: %w", docID, err)
	}

	return index, nil
}

// Close releases the database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

// encodeVector packs float32 values as little-endian bytes.
func encodeVector(vector []float32) []byte {
	blob := make([]byte, 4*len(vector))
	for i, v := range vector {
		binary.LittleEndian.PutUint32(blob[i*4:], math.Float32bits(v))
	}
	return blob
}

// decodeVector unpacks little-endian bytes back into float32 values.
func decodeVector(blob []byte) []float32 {
	vector := make([]float32, len(blob)/4)
	for i := range vector {
		vector[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[i*4:]))
	}
	return vector
}
