package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"docquery/internal/config"
	"docquery/internal/corpus"
	"docquery/internal/models"
	"docquery/internal/query"
	"docquery/internal/util"
)

// RebuildFunc re-ingests the document directory and produces a fresh
// corpus snapshot.
type RebuildFunc func(ctx context.Context) (*corpus.Snapshot, error)

// Server exposes the query engine over HTTP. The current corpus snapshot
// is held behind a read lock and replaced wholesale on rebuild, so
// in-flight queries never observe partial state.
type Server struct {
	cfg     config.Config
	svc     *query.Service
	rebuild RebuildFunc

	mu   sync.RWMutex
	snap *corpus.Snapshot
}

func NewServer(cfg config.Config, svc *query.Service, snap *corpus.Snapshot, rebuild RebuildFunc) *Server {
	return &Server{cfg: cfg, svc: svc, snap: snap, rebuild: rebuild}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/documents", s.handleDocuments)
	mux.HandleFunc("/query", s.requireAuth(s.handleQuery))
	mux.HandleFunc("/rebuild", s.requireAuth(s.handleRebuild))
	return withCORS(mux)
}

func (s *Server) snapshot() *corpus.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	snap := s.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"documents": len(snap.Documents),
		"chunks":    snap.ChunkCount(),
	})
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method_not_allowed", fmt.Errorf("method not allowed"))
		return
	}
	type docInfo struct {
		ID       string `json:"id"`
		Filename string `json:"filename"`
		Chunks   int    `json:"chunks"`
		Preview  string `json:"preview"`
	}
	snap := s.snapshot()
	out := make([]docInfo, 0, len(snap.Documents))
	for _, d := range snap.Documents {
		out = append(out, docInfo{
			ID:       d.ID,
			Filename: d.Filename,
			Chunks:   len(d.Chunks),
			Preview:  util.Excerpt(d.Content, 200),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": out})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method_not_allowed", fmt.Errorf("method not allowed"))
		return
	}
	var req models.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_json", fmt.Errorf("invalid json: %w", err))
		return
	}
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		writeErr(w, http.StatusBadRequest, "missing_query", fmt.Errorf("query is required"))
		return
	}
	if req.MaxResults <= 0 {
		req.MaxResults = s.cfg.MaxResults
	}

	resp, err := s.svc.Answer(r.Context(), req.Query, s.snapshot(), req.MaxResults)
	if err != nil {
		if errors.Is(err, util.ErrGenerationFailed) {
			writeErr(w, http.StatusBadGateway, "generation_failed", err)
			return
		}
		writeErr(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRebuild(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method_not_allowed", fmt.Errorf("method not allowed"))
		return
	}
	snap, err := s.rebuild(r.Context())
	if err != nil {
		if errors.Is(err, util.ErrExtractionFailed) || errors.Is(err, util.ErrNoExtractableText) {
			writeErr(w, http.StatusUnprocessableEntity, "extraction_failed", err)
			return
		}
		writeErr(w, http.StatusInternalServerError, "rebuild_failed", err)
		return
	}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	log.Printf("corpus rebuilt: %d documents %d chunks %d vocabulary terms",
		len(snap.Documents), snap.ChunkCount(), snap.Vocab.Size())
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"documents": len(snap.Documents),
		"chunks":    snap.ChunkCount(),
	})
}

// requireAuth enforces bearer-token auth when a token is configured.
// Tokens shorter than 10 characters are rejected outright.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.APIToken == "" {
			next(w, r)
			return
		}
		auth := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok {
			writeErr(w, http.StatusUnauthorized, "missing_token", fmt.Errorf("authorization header with Bearer token required"))
			return
		}
		if len(token) <= 10 || token != s.cfg.APIToken {
			writeErr(w, http.StatusUnauthorized, "invalid_token", fmt.Errorf("token is invalid"))
			return
		}
		next(w, r)
	}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, kind string, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, map[string]any{"status": "error", "error": kind, "message": msg})
}
