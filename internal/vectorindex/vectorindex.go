// Package vectorindex provides exact nearest-neighbour search over a
// document's embedded chunks. A flat scan is sufficient at per-document
// scale; no approximate index structure is needed.
package vectorindex

import (
	"math"
	"sort"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
)

// Search returns the contents of the k entries most similar to the
// query vector, in decreasing similarity order. Ties are broken by
// insertion order (earlier entry wins). k is clamped to the number of
// entries.
func Search(index *domain.Index, query []float32, k int) []string {
	if index == nil || len(index.Entries) == 0 || k <= 0 {
		return nil
	}
	if k > len(index.Entries) {
		k = len(index.Entries)
	}

	type scored struct {
		position   int
		similarity float64
	}

	ranked := make([]scored, len(index.Entries))
	for i, entry := range index.Entries {
		ranked[i] = scored{
			position:   i,
			similarity: CosineSimilarity(query, entry.Vector),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].similarity > ranked[j].similarity
	})

	results := make([]string, k)
	for i := 0; i < k; i++ {
		results[i] = index.Entries[ranked[i].position].Content
	}
	return results
}

// CosineSimilarity computes the cosine of the angle between two
// vectors. Mismatched lengths or zero vectors score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
