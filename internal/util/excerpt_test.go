package util

import (
	"strings"
	"testing"
)

func TestExcerptShortUnchanged(t *testing.T) {
	if got := Excerpt("short text", 200); got != "short text" {
		t.Errorf("Excerpt = %q", got)
	}
}

func TestExcerptTruncates(t *testing.T) {
	s := strings.Repeat("x", 250)
	got := Excerpt(s, 200)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated excerpt should end with marker: %q", got)
	}
	if len([]rune(got)) != 203 {
		t.Errorf("expected 200 runes plus marker, got %d", len([]rune(got)))
	}
}

func TestExcerptCountsRunes(t *testing.T) {
	s := strings.Repeat("é", 10)
	if got := Excerpt(s, 10); got != s {
		t.Errorf("10 multibyte runes should fit in 10: %q", got)
	}
	got := Excerpt(s, 5)
	if got != strings.Repeat("é", 5)+"..." {
		t.Errorf("Excerpt = %q", got)
	}
}

func TestExcerptTrimsCutWhitespace(t *testing.T) {
	got := Excerpt("hello world", 6)
	if got != "hello..." {
		t.Errorf("Excerpt = %q", got)
	}
}

func TestExcerptNonPositiveMax(t *testing.T) {
	if got := Excerpt("anything", 0); got != "" {
		t.Errorf("Excerpt = %q", got)
	}
}

func TestSHA256HexFromReader(t *testing.T) {
	got, err := SHA256HexFromReader(strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("SHA256HexFromReader: %v", err)
	}
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got != want {
		t.Errorf("hash = %s, want %s", got, want)
	}
}
