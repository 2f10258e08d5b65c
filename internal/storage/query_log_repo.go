package storage

import (
	"context"
	"fmt"
)

// QueryLogRecord is one answered (or failed) query. Only retrieval
// metadata is recorded; vectors and chunk text never touch the database.
type QueryLogRecord struct {
	QueryID      string
	Question     string
	ResultCount  int
	TopScore     float32
	ProviderName string
	Model        string
	Status       string
	ErrorType    string
	ElapsedMs    int64
}

type QueryLogRepo struct {
	db *DB
}

func NewQueryLogRepo(db *DB) *QueryLogRepo {
	return &QueryLogRepo{db: db}
}

func (r *QueryLogRepo) Insert(ctx context.Context, rec QueryLogRecord) error {
	_, err := r.db.Pool.Exec(ctx, `
INSERT INTO query_log(query_id, question, result_count, top_score, provider_name, model, status, error_type, elapsed_ms)
VALUES (COALESCE(NULLIF($1,'')::uuid, gen_random_uuid()), $2, $3, $4, $5, $6, $7, NULLIF($8,''), $9)`,
		rec.QueryID, rec.Question, rec.ResultCount, rec.TopScore, rec.ProviderName, rec.Model, rec.Status, rec.ErrorType, rec.ElapsedMs)
	if err != nil {
		return fmt.Errorf("insert query log: %w", err)
	}
	return nil
}
