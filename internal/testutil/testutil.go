// Package testutil provides deterministic test doubles shared across package
// tests, most notably a local embedding function so archival-memory tests
// never touch an embedding service.
package testutil

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	"github.com/philippgille/chromem-go"
)

// HashEmbedding returns a deterministic bag-of-words hashing embedder. Texts
// sharing words produce similar vectors and identical texts embed
// identically, so self-similarity ranks highest under cosine similarity.
func HashEmbedding(dim int) chromem.EmbeddingFunc {
	return func(_ context.Context, text string) ([]float32, error) {
		vec := make([]float32, dim)
		for _, word := range strings.Fields(strings.ToLower(text)) {
			h := fnv.New32a()
			h.Write([]byte(word))
			vec[int(h.Sum32())%dim]++
		}
		var norm float64
		for _, v := range vec {
			norm += float64(v * v)
		}
		if norm == 0 {
			// chromem rejects zero vectors; give empty texts a fixed direction.
			vec[0] = 1
			return vec, nil
		}
		n := float32(math.Sqrt(norm))
		for i := range vec {
			vec[i] /= n
		}
		return vec, nil
	}
}
