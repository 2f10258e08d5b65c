package query

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"docquery/internal/corpus"
	"docquery/internal/models"
	"docquery/internal/providers"
	"docquery/internal/storage"
	"docquery/internal/util"
	"docquery/internal/vector"

	"github.com/google/uuid"
)

const excerptMaxRunes = 200

// Service sequences the full query path: embed the question against the
// snapshot's vocabulary, retrieve the top chunks, hand them to the
// generation provider, and assemble citations.
type Service struct {
	provider providers.LLMProvider
	queryLog *storage.QueryLogRepo
}

// NewService wires the orchestrator. queryLog may be nil; audit logging
// is then disabled.
func NewService(provider providers.LLMProvider, queryLog *storage.QueryLogRepo) *Service {
	return &Service{provider: provider, queryLog: queryLog}
}

// Answer runs one query against an immutable corpus snapshot. The
// snapshot is read-only and shared across concurrent calls; nothing here
// mutates it. maxResults <= 0 retrieves nothing but still consults the
// provider with empty context. Generation failures are reported as a
// single ErrGenerationFailed-wrapped error, with no retry.
func (s *Service) Answer(ctx context.Context, queryText string, snap *corpus.Snapshot, maxResults int) (models.QueryResponse, error) {
	start := time.Now()

	queryVec := snap.Vocab.Vectorize(queryText)
	results := vector.Search(queryVec, snap.Documents, maxResults)

	contexts := make([]string, 0, len(results))
	for _, r := range results {
		doc, ok := snap.DocumentForChunk(r.Chunk.ID)
		if !ok {
			continue
		}
		contexts = append(contexts, fmt.Sprintf("Document: %s\nContent: %s", doc.Filename, r.Chunk.Content))
	}

	resp, info, err := s.provider.Generate(ctx, providers.GenerateRequest{
		Operation: "rag_answer",
		Prompt:    buildPrompt(queryText),
		Context:   contexts,
	})
	if err != nil {
		s.audit(queryText, results, info, "failed", string(providers.ClassifyError(err)), time.Since(start))
		return models.QueryResponse{}, fmt.Errorf("%w: %v", util.ErrGenerationFailed, err)
	}

	citations := make([]models.Citation, 0, len(results))
	for _, r := range results {
		doc, ok := snap.DocumentForChunk(r.Chunk.ID)
		if !ok {
			// Should be impossible: chunk IDs are corpus-unique and every
			// chunk belongs to exactly one stored document.
			continue
		}
		citations = append(citations, models.Citation{
			Document:        doc.Filename,
			TextExcerpt:     util.Excerpt(r.Chunk.Content, excerptMaxRunes),
			ConfidenceScore: r.Score,
		})
	}

	elapsed := time.Since(start)
	s.audit(queryText, results, info, "success", "", elapsed)

	return models.QueryResponse{
		Status:           "success",
		Response:         resp.Text,
		Citations:        citations,
		ProcessingTimeMs: elapsed.Milliseconds(),
	}, nil
}

func (s *Service) audit(question string, results []vector.Result, info providers.ProviderInfo, status, errorType string, elapsed time.Duration) {
	if s.queryLog == nil {
		return
	}
	var topScore float32
	if len(results) > 0 {
		topScore = results[0].Score
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.queryLog.Insert(ctx, storage.QueryLogRecord{
		QueryID:      uuid.NewString(),
		Question:     question,
		ResultCount:  len(results),
		TopScore:     topScore,
		ProviderName: info.Name,
		Model:        info.Model,
		Status:       status,
		ErrorType:    errorType,
		ElapsedMs:    elapsed.Milliseconds(),
	})
	if err != nil {
		log.Printf("query audit insert failed: %v", err)
	}
}

func buildPrompt(queryText string) string {
	return strings.Join([]string{
		"You are an expert assistant that answers questions based solely on the provided context documents.",
		"",
		"INSTRUCTIONS:",
		"1. Answer the question using ONLY the information from the context documents below.",
		"2. Be concise but comprehensive.",
		"3. If you quote or reference specific information, indicate which document it came from.",
		"4. If the context doesn't contain enough information to answer the question, say so clearly.",
		"5. Do not add information not present in the context.",
		"",
		"QUESTION: " + queryText,
	}, "\n")
}
