package models

type Document struct {
	ID       string  `json:"id"`
	Filename string  `json:"filename"`
	Content  string  `json:"content"`
	Chunks   []Chunk `json:"chunks"`
}

type Chunk struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Index      int       `json:"index"`
	Content    string    `json:"content"`
	Start      int       `json:"start_position"`
	End        int       `json:"end_position"`
	Embedding  []float32 `json:"embedding,omitempty"`
}

type QueryRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

type QueryResponse struct {
	Status           string     `json:"status"`
	Response         string     `json:"response"`
	Citations        []Citation `json:"citations"`
	ProcessingTimeMs int64      `json:"processing_time_ms"`
}

type Citation struct {
	Document        string  `json:"document"`
	TextExcerpt     string  `json:"text_excerpt"`
	ConfidenceScore float32 `json:"confidence_score"`
}
