package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"docquery/internal/util"
)

func TestProcessDirectoryEmpty(t *testing.T) {
	dir := t.TempDir()
	sources, err := ProcessDirectory(dir)
	if err != nil {
		t.Fatalf("ProcessDirectory: %v", err)
	}
	if len(sources) != 0 {
		t.Errorf("expected no sources, got %d", len(sources))
	}
}

func TestProcessDirectoryIgnoresNonPDF(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o755); err != nil {
		t.Fatal(err)
	}
	sources, err := ProcessDirectory(dir)
	if err != nil {
		t.Fatalf("ProcessDirectory: %v", err)
	}
	if len(sources) != 0 {
		t.Errorf("expected non-PDF entries skipped, got %d sources", len(sources))
	}
}

func TestProcessDirectoryMissing(t *testing.T) {
	_, err := ProcessDirectory(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestExtractFileCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ExtractFile(path)
	if err == nil {
		t.Fatal("expected extraction error for corrupt file")
	}
	if !errors.Is(err, util.ErrExtractionFailed) {
		t.Errorf("error should wrap ErrExtractionFailed: %v", err)
	}
}

func TestProcessDirectoryAbortsOnCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.pdf"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ProcessDirectory(dir)
	if !errors.Is(err, util.ErrExtractionFailed) {
		t.Fatalf("batch should abort with ErrExtractionFailed, got %v", err)
	}
}
