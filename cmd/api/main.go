package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"docquery/internal/api"
	"docquery/internal/config"
	"docquery/internal/corpus"
	"docquery/internal/ingest"
	"docquery/internal/providers"
	"docquery/internal/query"
	"docquery/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	builder := corpus.NewBuilder(corpus.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap), cfg.VocabSize)
	buildCorpus := func(ctx context.Context) (*corpus.Snapshot, error) {
		_ = ctx
		sources, err := ingest.ProcessDirectory(cfg.DocsDir)
		if err != nil {
			return nil, err
		}
		snap := builder.Build(sources)
		if cfg.DataOutRoot != "" {
			if err := corpus.WriteBuildArtifacts(cfg.DataOutRoot, snap); err != nil {
				log.Printf("write build artifacts failed: %v", err)
			}
		}
		return snap, nil
	}

	snap, err := buildCorpus(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("corpus built: %d documents %d chunks %d vocabulary terms",
		len(snap.Documents), snap.ChunkCount(), snap.Vocab.Size())

	pm, err := providers.NewManager(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var queryLog *storage.QueryLogRepo
	if cfg.PostgresURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		db, err := storage.NewDB(ctx, cfg.PostgresURL)
		cancel()
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		queryLog = storage.NewQueryLogRepo(db)
	}

	provider, _ := pm.First()
	svc := query.NewService(provider, queryLog)
	h := api.NewServer(cfg, svc, snap, buildCorpus)

	log.Printf("docquery api listening on %s docs_dir=%q llm_providers=%q", cfg.APIAddr, cfg.DocsDir, cfg.LLMProviders)
	if err := http.ListenAndServe(cfg.APIAddr, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
