package corpus

import (
	"regexp"
	"strings"

	"docquery/internal/models"

	"github.com/google/uuid"
)

const (
	// DefaultChunkSize is the target chunk length in characters (runes).
	DefaultChunkSize = 500
	// DefaultChunkOverlap is how many trailing characters of a closed
	// chunk seed the next one.
	DefaultChunkOverlap = 50
)

var (
	reSpecial    = regexp.MustCompile(`[^\w\s.,!?;:()\-\[\]{}]`)
	reWhitespace = regexp.MustCompile(`\s+`)
	reSentence   = regexp.MustCompile(`[.!?]+\s+`)
)

// Chunker splits cleaned document text into overlapping, bounded-length
// segments with stable character offsets. Splitting is deterministic for
// identical input apart from the generated chunk IDs.
type Chunker struct {
	chunkSize int
	overlap   int
}

func NewChunker(chunkSize, overlap int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = DefaultChunkOverlap
	}
	return &Chunker{chunkSize: chunkSize, overlap: overlap}
}

// CleanText collapses whitespace runs to single spaces and replaces
// characters outside word chars, whitespace and common punctuation.
func CleanText(text string) string {
	cleaned := reSpecial.ReplaceAllString(text, " ")
	cleaned = reWhitespace.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// SplitSentences breaks cleaned text into sentence-like units on runs of
// terminal punctuation followed by whitespace. The delimiters are dropped.
// This is a cheap heuristic, not full sentence parsing.
func SplitSentences(text string) []string {
	return reSentence.Split(text, -1)
}

// ChunkDocument greedily accumulates sentences into chunks of roughly
// chunkSize characters. Consecutive chunks share the trailing overlap of
// the previous chunk, and each chunk's half-open [start, end) offsets
// refer to the cleaned text. An empty document yields no chunks; a single
// sentence longer than the target size is emitted whole.
func (c *Chunker) ChunkDocument(documentID, text string) []models.Chunk {
	cleaned := CleanText(text)
	if cleaned == "" {
		return nil
	}

	chunks := make([]models.Chunk, 0, len(cleaned)/c.chunkSize+1)
	current := ""
	currentLen := 0 // rune count of current
	startPos := 0

	emit := func() {
		chunks = append(chunks, models.Chunk{
			ID:         uuid.NewString(),
			DocumentID: documentID,
			Index:      len(chunks),
			Content:    strings.TrimSpace(current),
			Start:      startPos,
			End:        startPos + currentLen,
		})
	}

	for _, sentence := range SplitSentences(cleaned) {
		if sentence == "" {
			continue
		}
		sentenceLen := len([]rune(sentence))

		if currentLen+sentenceLen > c.chunkSize && current != "" {
			emit()

			// Seed the next chunk with the tail of this one and move the
			// declared start back by the seeded length.
			overlapLen := c.overlap
			if currentLen <= overlapLen {
				overlapLen = currentLen
			}
			runes := []rune(current)
			overlapText := string(runes[len(runes)-overlapLen:])

			startPos += currentLen - overlapLen
			current = overlapText + " " + sentence
			currentLen = overlapLen + 1 + sentenceLen
			continue
		}

		if current == "" {
			current = sentence
			currentLen = sentenceLen
		} else {
			current += " " + sentence
			currentLen += 1 + sentenceLen
		}
	}

	if current != "" {
		emit()
	}
	return chunks
}
