package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.APIAddr != ":8000" {
		t.Errorf("APIAddr = %q", cfg.APIAddr)
	}
	if cfg.ChunkSize != 500 || cfg.ChunkOverlap != 50 {
		t.Errorf("chunking defaults = %d/%d", cfg.ChunkSize, cfg.ChunkOverlap)
	}
	if cfg.VocabSize != 1000 || cfg.MaxResults != 5 {
		t.Errorf("retrieval defaults = %d/%d", cfg.VocabSize, cfg.MaxResults)
	}
	if cfg.LLMProviders != "mock" {
		t.Errorf("LLMProviders = %q", cfg.LLMProviders)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DOCQUERY_API_ADDR", ":9090")
	t.Setenv("DOCQUERY_CHUNK_SIZE", "256")
	t.Setenv("DOCQUERY_MAX_RESULTS", "not-a-number")

	cfg := Load()
	if cfg.APIAddr != ":9090" {
		t.Errorf("APIAddr = %q", cfg.APIAddr)
	}
	if cfg.ChunkSize != 256 {
		t.Errorf("ChunkSize = %d", cfg.ChunkSize)
	}
	if cfg.MaxResults != 5 {
		t.Errorf("unparseable int should fall back to default, got %d", cfg.MaxResults)
	}
}
