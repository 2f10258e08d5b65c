package util

import "strings"

// Excerpt bounds s to maxRunes characters, appending an ellipsis marker
// when the text was truncated. Counting is by rune, not byte.
func Excerpt(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return strings.TrimSpace(string(runes[:maxRunes])) + "..."
}
