package corpus

import (
	"path/filepath"
	"time"

	"docquery/internal/util"
)

type buildSummary struct {
	BuiltAt         time.Time         `json:"built_at"`
	Documents       int               `json:"documents"`
	Chunks          int               `json:"chunks"`
	VocabularyTerms int               `json:"vocabulary_terms"`
	Dimension       int               `json:"dimension"`
	PerDocument     []documentSummary `json:"per_document"`
}

type documentSummary struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Chunks     int    `json:"chunks"`
}

type chunkRow struct {
	ChunkID    string `json:"chunk_id"`
	DocumentID string `json:"document_id"`
	Index      int    `json:"index"`
	Start      int    `json:"start_position"`
	End        int    `json:"end_position"`
	Text       string `json:"text"`
}

// WriteBuildArtifacts dumps a build summary and per-document chunk
// listings under outRoot for inspection. Embeddings are deliberately not
// written; vectors live only in memory.
func WriteBuildArtifacts(outRoot string, snap *Snapshot) error {
	summary := buildSummary{
		BuiltAt:         time.Now().UTC(),
		Documents:       len(snap.Documents),
		Chunks:          snap.ChunkCount(),
		VocabularyTerms: snap.Vocab.Size(),
		Dimension:       snap.Vocab.Dimension(),
		PerDocument:     make([]documentSummary, 0, len(snap.Documents)),
	}
	for _, doc := range snap.Documents {
		summary.PerDocument = append(summary.PerDocument, documentSummary{
			DocumentID: doc.ID,
			Filename:   doc.Filename,
			Chunks:     len(doc.Chunks),
		})
		rows := make([]any, 0, len(doc.Chunks))
		for _, c := range doc.Chunks {
			rows = append(rows, chunkRow{
				ChunkID:    c.ID,
				DocumentID: c.DocumentID,
				Index:      c.Index,
				Start:      c.Start,
				End:        c.End,
				Text:       c.Content,
			})
		}
		path := filepath.Join(outRoot, "documents", doc.ID, "chunks.jsonl")
		if err := util.WriteJSONLinesAtomic(path, rows); err != nil {
			return err
		}
	}
	return util.WriteJSONAtomic(filepath.Join(outRoot, "corpus_summary.json"), summary)
}
