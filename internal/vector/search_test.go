package vector

import (
	"math"
	"testing"

	"docquery/internal/models"
)

func testDocuments() []models.Document {
	return []models.Document{
		{
			ID:       "doc-a",
			Filename: "a.pdf",
			Chunks: []models.Chunk{
				{ID: "a0", DocumentID: "doc-a", Embedding: []float32{1, 0, 0}},
				{ID: "a1", DocumentID: "doc-a", Embedding: []float32{0, 1, 0}},
			},
		},
		{
			ID:       "doc-b",
			Filename: "b.pdf",
			Chunks: []models.Chunk{
				{ID: "b0", DocumentID: "doc-b", Embedding: []float32{0, 0, 1}},
				{ID: "b1", DocumentID: "doc-b"}, // no embedding, must be skipped
			},
		},
	}
}

func TestSearchSelfSimilarityRanksFirst(t *testing.T) {
	docs := testDocuments()
	results := Search([]float32{0, 1, 0}, docs, 10)
	if len(results) != 3 {
		t.Fatalf("expected 3 scored chunks, got %d", len(results))
	}
	if results[0].Chunk.ID != "a1" {
		t.Fatalf("expected a1 first, got %s", results[0].Chunk.ID)
	}
	if math.Abs(float64(results[0].Score)-1.0) > 1e-6 {
		t.Fatalf("self similarity should be 1.0, got %v", results[0].Score)
	}
}

func TestSearchResultLengthAndOrder(t *testing.T) {
	docs := testDocuments()
	results := Search([]float32{1, 1, 0}, docs, 2)
	if len(results) != 2 {
		t.Fatalf("expected k=2 results, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("scores not non-increasing at %d", i)
		}
	}
	if all := Search([]float32{1, 1, 0}, docs, 100); len(all) != 3 {
		t.Fatalf("k beyond corpus must return all embedded chunks, got %d", len(all))
	}
}

func TestSearchNonPositiveK(t *testing.T) {
	docs := testDocuments()
	if res := Search([]float32{1, 0, 0}, docs, 0); len(res) != 0 {
		t.Fatalf("k=0 must return nothing, got %d", len(res))
	}
	if res := Search([]float32{1, 0, 0}, docs, -3); len(res) != 0 {
		t.Fatalf("negative k must return nothing, got %d", len(res))
	}
}

func TestSearchSkipsMissingEmbeddings(t *testing.T) {
	docs := testDocuments()
	results := Search([]float32{1, 1, 1}, docs, 10)
	for _, r := range results {
		if r.Chunk.ID == "b1" {
			t.Fatalf("chunk without embedding must not be scored")
		}
	}
}

func TestSearchZeroQueryKeepsProductionOrder(t *testing.T) {
	docs := testDocuments()
	results := Search([]float32{0, 0, 0}, docs, 10)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	want := []string{"a0", "a1", "b0"}
	for i, r := range results {
		if r.Score != 0 {
			t.Fatalf("zero query must score 0, got %v", r.Score)
		}
		if r.Chunk.ID != want[i] {
			t.Fatalf("tie order not stable: got %s at %d, want %s", r.Chunk.ID, i, want[i])
		}
	}
}
