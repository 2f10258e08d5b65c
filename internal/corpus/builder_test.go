package corpus

import (
	"math"
	"testing"
)

func TestBuildSnapshot(t *testing.T) {
	b := NewBuilder(NewChunker(500, 50), 1000)
	snap := b.Build([]Source{
		{ID: "doc-a", Filename: "a.pdf", Text: "The cat sat on the mat. The mat was red."},
		{Filename: "b.pdf", Text: "Dogs bark loudly at night. Loud noises scare cats."},
	})

	if len(snap.Documents) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(snap.Documents))
	}
	if snap.Documents[1].ID == "" {
		t.Fatalf("source without ID must be assigned one")
	}
	if snap.ChunkCount() != 2 {
		t.Fatalf("expected 2 chunks, got %d", snap.ChunkCount())
	}
	if snap.Vocab.Size() == 0 {
		t.Fatalf("vocabulary must not be empty")
	}

	for _, doc := range snap.Documents {
		for _, c := range doc.Chunks {
			if c.Embedding == nil {
				t.Fatalf("chunk %s has no embedding", c.ID)
			}
			if len(c.Embedding) != snap.Vocab.Dimension() {
				t.Fatalf("embedding length %d != dimension %d", len(c.Embedding), snap.Vocab.Dimension())
			}
			var sum float64
			for _, x := range c.Embedding {
				sum += float64(x) * float64(x)
			}
			norm := math.Sqrt(sum)
			if norm != 0 && math.Abs(norm-1.0) > 1e-6 {
				t.Fatalf("embedding for %s not unit norm: %v", c.ID, norm)
			}

			owner, ok := snap.DocumentForChunk(c.ID)
			if !ok || owner.ID != doc.ID {
				t.Fatalf("chunk %s resolves to wrong document", c.ID)
			}
		}
	}

	if _, ok := snap.DocumentForChunk("no-such-chunk"); ok {
		t.Fatalf("unknown chunk id must not resolve")
	}
}

func TestBuildEmptySnapshot(t *testing.T) {
	b := NewBuilder(nil, 0)
	snap := b.Build(nil)
	if len(snap.Documents) != 0 || snap.ChunkCount() != 0 {
		t.Fatalf("empty input must build an empty snapshot")
	}
	if snap.Vocab.Size() != 0 {
		t.Fatalf("empty snapshot must carry an empty vocabulary")
	}
	// Still queryable: vectorization produces the zero vector.
	vec := snap.Vocab.Vectorize("anything")
	for _, x := range vec {
		if x != 0 {
			t.Fatalf("expected zero vector from empty vocabulary")
		}
	}
}
