package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIAddr      string
	DocsDir      string
	DataOutRoot  string
	ChunkSize    int
	ChunkOverlap int
	VocabSize    int
	MaxResults   int
	LLMProviders string
	PostgresURL  string
	APIToken     string
}

func Load() Config {
	return Config{
		APIAddr:      getenv("DOCQUERY_API_ADDR", ":8000"),
		DocsDir:      getenv("DOCQUERY_DOCS_DIR", "./documents"),
		DataOutRoot:  getenv("DOCQUERY_DATA_OUT", ""),
		ChunkSize:    getenvInt("DOCQUERY_CHUNK_SIZE", 500),
		ChunkOverlap: getenvInt("DOCQUERY_CHUNK_OVERLAP", 50),
		VocabSize:    getenvInt("DOCQUERY_VOCAB_SIZE", 1000),
		MaxResults:   getenvInt("DOCQUERY_MAX_RESULTS", 5),
		LLMProviders: getenv("DOCQUERY_LLM_PROVIDERS", "mock"),
		PostgresURL:  getenv("DOCQUERY_POSTGRES_URL", ""),
		APIToken:     getenv("DOCQUERY_API_TOKEN", ""),
	}
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
