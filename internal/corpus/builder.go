package corpus

import (
	"docquery/internal/embedding"
	"docquery/internal/models"

	"github.com/google/uuid"
)

// Source is one already-extracted document handed to the builder: an
// opaque identifier, a display name, and the raw extracted text.
type Source struct {
	ID       string
	Filename string
	Text     string
}

// Snapshot is a fully built, immutable corpus: documents with embedded
// chunks plus the vocabulary generation they were embedded against.
// Queries share a Snapshot by reference without locking; replacing a
// corpus means swapping the whole Snapshot, never mutating one.
type Snapshot struct {
	Documents []models.Document
	Vocab     *embedding.Vocabulary

	docByChunk map[string]int
	chunkCount int
}

// Builder turns extracted document texts into a Snapshot.
type Builder struct {
	chunker   *Chunker
	vocabSize int
}

func NewBuilder(chunker *Chunker, vocabSize int) *Builder {
	if chunker == nil {
		chunker = NewChunker(DefaultChunkSize, DefaultChunkOverlap)
	}
	return &Builder{chunker: chunker, vocabSize: vocabSize}
}

// Build runs the whole batch pipeline: chunk every source, build the
// corpus-wide vocabulary and IDF table over all chunks, then re-emit
// every chunk as a fully formed value carrying its embedding. The
// returned Snapshot is complete and read-only; an empty input produces
// an empty but queryable Snapshot.
func (b *Builder) Build(sources []Source) *Snapshot {
	documents := make([]models.Document, 0, len(sources))
	texts := make([]string, 0, len(sources)*4)
	for _, src := range sources {
		id := src.ID
		if id == "" {
			id = uuid.NewString()
		}
		chunks := b.chunker.ChunkDocument(id, src.Text)
		for _, c := range chunks {
			texts = append(texts, c.Content)
		}
		documents = append(documents, models.Document{
			ID:       id,
			Filename: src.Filename,
			Content:  src.Text,
			Chunks:   chunks,
		})
	}

	vocab := embedding.Build(texts, b.vocabSize)

	snap := &Snapshot{
		Documents:  documents,
		Vocab:      vocab,
		docByChunk: make(map[string]int, len(texts)),
	}
	for di := range snap.Documents {
		doc := &snap.Documents[di]
		for ci := range doc.Chunks {
			doc.Chunks[ci].Embedding = vocab.Vectorize(doc.Chunks[ci].Content)
			snap.docByChunk[doc.Chunks[ci].ID] = di
		}
		snap.chunkCount += len(doc.Chunks)
	}
	return snap
}

// DocumentForChunk resolves the document owning the given chunk ID.
func (s *Snapshot) DocumentForChunk(chunkID string) (models.Document, bool) {
	di, ok := s.docByChunk[chunkID]
	if !ok {
		return models.Document{}, false
	}
	return s.Documents[di], true
}

// ChunkCount is the number of chunks across all documents.
func (s *Snapshot) ChunkCount() int { return s.chunkCount }
