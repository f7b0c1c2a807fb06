// Package chunker splits extracted document text into overlapping
// passages sized for embedding and retrieval.
package chunker

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
)

// DefaultChunkSize is the default number of bytes per chunk.
const DefaultChunkSize = 500

// DefaultChunkOverlap is the default number of overlapping bytes
// carried over from the previous chunk.
const DefaultChunkOverlap = 200

// separators are tried largest-boundary first before falling back to a
// hard cut: paragraph, line, sentence, word.
var separators = []string{"\n\n", "\n", ". ", " "}

// Splitter splits text into fixed-size chunks with overlap, preferring
// semantic boundaries over hard character cuts.
type Splitter struct {
	chunkSize int
	overlap   int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the chunk size in bytes.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in bytes.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// New creates a new splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Ensure overlap doesn't exceed chunk size
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// Split splits text into ordered chunks. Every chunk after the first
// begins with the trailing overlap portion of the previous chunk's
// content region, so context survives a chunk boundary. Splitting is
// deterministic: the same text always yields the same chunk contents.
func (s *Splitter) Split(text string, metadata map[string]string) []domain.Chunk {
	if text == "" {
		return nil
	}

	estimated := (len(text) / (s.chunkSize - s.overlap)) + 1
	chunks := make([]domain.Chunk, 0, estimated)

	start := 0
	position := 0

	for start < len(text) {
		// The overlap prefix counts against the chunk size, so the
		// fresh content region shrinks after the first chunk.
		budget := s.chunkSize
		if start > 0 {
			budget -= s.overlap
		}

		end := s.regionEnd(text, start, budget)
		prefix := s.overlapStart(text, start)

		chunk := domain.Chunk{
			ID:       uuid.New().String(),
			Content:  text[prefix:end],
			Position: position,
			Metadata: copyMetadata(metadata),
		}

		chunks = append(chunks, chunk)
		position++
		start = end
	}

	return chunks
}

// regionEnd picks where the content region starting at start should
// stop: at the largest semantic boundary inside the budget, or at a
// hard cut on a rune boundary when no separator lands in the second
// half of the window.
func (s *Splitter) regionEnd(text string, start, budget int) int {
	end := start + budget
	if end >= len(text) {
		return len(text)
	}

	window := text[start:end]
	for _, sep := range separators {
		idx := strings.LastIndex(window, sep)
		if idx < 0 {
			continue
		}
		cut := idx + len(sep)
		// A break too close to the region start would degenerate
		// into tiny chunks; keep at least half the window.
		if cut > budget/2 {
			return start + cut
		}
	}

	// Hard cut: never split a UTF-8 sequence.
	for end > start && !utf8.RuneStart(text[end]) {
		end--
	}
	if end == start {
		end = start + budget
	}
	return end
}

// overlapStart returns where the overlap prefix for a region starting
// at start begins, clamped to the text start and to a rune boundary.
func (s *Splitter) overlapStart(text string, start int) int {
	if start == 0 {
		return 0
	}
	prefix := start - s.overlap
	if prefix < 0 {
		prefix = 0
	}
	for prefix < start && !utf8.RuneStart(text[prefix]) {
		prefix++
	}
	return prefix
}

func copyMetadata(metadata map[string]string) map[string]string {
	copied := make(map[string]string, len(metadata))
	for k, v := range metadata {
		copied[k] = v
	}
	return copied
}
