package vectorindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
)

func index(entries ...domain.IndexEntry) *domain.Index {
	return &domain.Index{Model: "test", Dimensions: 3, Entries: entries}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0, 0}, []float32{1, 0, 0}, 1},
		{"orthogonal", []float32{1, 0, 0}, []float32{0, 1, 0}, 0},
		{"opposite", []float32{1, 0, 0}, []float32{-1, 0, 0}, -1},
		{"zero vector", []float32{0, 0, 0}, []float32{1, 0, 0}, 0},
		{"length mismatch", []float32{1, 0}, []float32{1, 0, 0}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSearch_Ranking(t *testing.T) {
	idx := index(
		domain.IndexEntry{Content: "far", Vector: []float32{0, 1, 0}},
		domain.IndexEntry{Content: "near", Vector: []float32{1, 0.1, 0}},
		domain.IndexEntry{Content: "exact", Vector: []float32{1, 0, 0}},
	)

	results := Search(idx, []float32{1, 0, 0}, 2)

	require.Len(t, results, 2)
	assert.Equal(t, "exact", results[0])
	assert.Equal(t, "near", results[1])
}

// TestSearch_TieBreak verifies equally similar entries keep insertion
// order, earlier entry first.
func TestSearch_TieBreak(t *testing.T) {
	idx := index(
		domain.IndexEntry{Content: "first", Vector: []float32{1, 0, 0}},
		domain.IndexEntry{Content: "second", Vector: []float32{1, 0, 0}},
		domain.IndexEntry{Content: "third", Vector: []float32{1, 0, 0}},
	)

	results := Search(idx, []float32{1, 0, 0}, 3)

	assert.Equal(t, []string{"first", "second", "third"}, results)
}

func TestSearch_KClamped(t *testing.T) {
	idx := index(
		domain.IndexEntry{Content: "only", Vector: []float32{1, 0, 0}},
	)

	results := Search(idx, []float32{1, 0, 0}, 3)
	assert.Equal(t, []string{"only"}, results)
}

func TestSearch_Empty(t *testing.T) {
	assert.Nil(t, Search(nil, []float32{1}, 3))
	assert.Nil(t, Search(index(), []float32{1}, 3))
	assert.Nil(t, Search(index(domain.IndexEntry{Content: "x", Vector: []float32{1, 0, 0}}), []float32{1, 0, 0}, 0))
}
