package vector

import (
	"sort"

	"docquery/internal/embedding"
	"docquery/internal/models"
)

// Result pairs a scored chunk with its cosine similarity to the query.
type Result struct {
	Chunk models.Chunk
	Score float32
}

// Search scores every embedded chunk in the corpus against the query
// vector and returns up to topK results, most similar first. The scan is
// brute force and exact; the corpus is assumed small enough that a linear
// pass is acceptable. Chunks without an embedding are skipped entirely
// rather than scored zero. The sort is stable, so equal scores keep the
// order pairs were produced in (document order, then chunk order).
func Search(queryVec []float32, documents []models.Document, topK int) []Result {
	if topK <= 0 {
		return nil
	}

	scored := make([]Result, 0, 64)
	for _, doc := range documents {
		for _, chunk := range doc.Chunks {
			if chunk.Embedding == nil {
				continue
			}
			scored = append(scored, Result{
				Chunk: chunk,
				Score: embedding.Cosine(queryVec, chunk.Embedding),
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}
