package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"docquery/internal/corpus"
	"docquery/internal/util"

	"github.com/ledongthuc/pdf"
)

// ProcessDirectory finds every PDF in dir and extracts its text. The
// result is ordered by filename so corpus builds are reproducible. Any
// extraction failure aborts the whole batch; the corpus is all-or-nothing.
func ProcessDirectory(dir string) ([]corpus.Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read documents dir: %w", err)
	}
	paths := make([]string, 0)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	sources := make([]corpus.Source, 0, len(paths))
	for _, path := range paths {
		src, err := ExtractFile(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// ExtractFile pulls the plain text out of one PDF. The document ID is the
// SHA-256 of the file bytes, so re-ingesting an unchanged file yields the
// same identifier.
func ExtractFile(path string) (corpus.Source, error) {
	filename := filepath.Base(path)

	raw, err := os.Open(path)
	if err != nil {
		return corpus.Source{}, fmt.Errorf("%w: open %s: %v", util.ErrExtractionFailed, filename, err)
	}
	docID, err := util.SHA256HexFromReader(raw)
	_ = raw.Close()
	if err != nil {
		return corpus.Source{}, fmt.Errorf("%w: hash %s: %v", util.ErrExtractionFailed, filename, err)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return corpus.Source{}, fmt.Errorf("%w: open pdf %s: %v", util.ErrExtractionFailed, filename, err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return corpus.Source{}, fmt.Errorf("%w: extract %s: %v", util.ErrExtractionFailed, filename, err)
	}
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, reader); err != nil {
		return corpus.Source{}, fmt.Errorf("%w: read %s: %v", util.ErrExtractionFailed, filename, err)
	}

	text := util.SanitizeText(strings.TrimSpace(buf.String()))
	if text == "" {
		return corpus.Source{}, fmt.Errorf("%w: %s", util.ErrNoExtractableText, filename)
	}
	return corpus.Source{ID: docID, Filename: filename, Text: text}, nil
}
