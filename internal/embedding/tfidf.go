package embedding

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

const (
	// DefaultMaxTerms caps how many terms enter the vocabulary.
	DefaultMaxTerms = 1000
	// MinDimensions is the floor on embedding vector length.
	MinDimensions = 100
)

// Vocabulary is the frozen term-weighting model built once per corpus
// generation: a dense term index plus per-term IDF weights. Chunk and
// query vectors are only comparable when produced by the same Vocabulary
// instance, so it is never mutated after Build returns.
type Vocabulary struct {
	index map[string]int
	idf   map[string]float32
}

// Build scans all chunk texts once and produces the vocabulary and IDF
// table. Terms are ranked by descending total occurrence count and the
// top maxTerms get dense indices assigned by rank; ties are broken by
// ascending term so the ordering is reproducible. Every term seen in any
// chunk keeps an IDF entry even when it misses the vocabulary cut. An
// empty corpus yields an empty model and never fails.
func Build(texts []string, maxTerms int) *Vocabulary {
	if maxTerms <= 0 {
		maxTerms = DefaultMaxTerms
	}

	wordCounts := make(map[string]int)
	docFrequencies := make(map[string]int)
	for _, text := range texts {
		words := Tokenize(text)
		seen := make(map[string]struct{}, len(words))
		for _, w := range words {
			wordCounts[w]++
			if _, ok := seen[w]; !ok {
				seen[w] = struct{}{}
				docFrequencies[w]++
			}
		}
	}

	totalChunks := float64(len(texts))
	idf := make(map[string]float32, len(docFrequencies))
	for w, df := range docFrequencies {
		idf[w] = float32(math.Log(totalChunks / float64(df)))
	}

	terms := make([]string, 0, len(wordCounts))
	for w := range wordCounts {
		terms = append(terms, w)
	}
	sort.Slice(terms, func(i, j int) bool {
		if wordCounts[terms[i]] != wordCounts[terms[j]] {
			return wordCounts[terms[i]] > wordCounts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxTerms {
		terms = terms[:maxTerms]
	}

	index := make(map[string]int, len(terms))
	for i, w := range terms {
		index[w] = i
	}
	return &Vocabulary{index: index, idf: idf}
}

// Size reports how many terms carry a vocabulary index.
func (v *Vocabulary) Size() int { return len(v.index) }

// Dimension is the length of every vector this model produces.
func (v *Vocabulary) Dimension() int {
	if len(v.index) > MinDimensions {
		return len(v.index)
	}
	return MinDimensions
}

// IDF returns the inverse-document-frequency weight for a term, or ok
// false when the term was never seen at build time.
func (v *Vocabulary) IDF(term string) (float32, bool) {
	w, ok := v.idf[term]
	return w, ok
}

// Vectorize converts text into a TF-IDF weighted, L2-normalized vector.
// Terms outside the vocabulary contribute nothing; a text with no
// in-vocabulary tokens produces the zero vector, which is preserved
// unnormalized. The function is pure and is used identically for chunk
// embedding at build time and query embedding at query time.
func (v *Vocabulary) Vectorize(text string) []float32 {
	vec := make([]float32, v.Dimension())
	words := Tokenize(text)
	if len(words) == 0 {
		return vec
	}

	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	total := float32(len(words))
	for w, count := range counts {
		idx, ok := v.index[w]
		if !ok || idx >= len(vec) {
			continue
		}
		tf := float32(count) / total
		idfWeight, ok := v.idf[w]
		if !ok {
			// Only reachable with a vocabulary built from a different
			// corpus than the IDF table; weigh by term frequency alone.
			idfWeight = 1.0
		}
		vec[idx] = tf * idfWeight
	}

	normalize(vec)
	return vec
}

// Tokenize lowercases, splits on whitespace, strips non-alphanumeric
// runes from each token, and discards tokens of length <= 2.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		var b strings.Builder
		for _, r := range f {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
		w := b.String()
		if len([]rune(w)) > 2 {
			out = append(out, w)
		}
	}
	return out
}

// Cosine computes cosine similarity over the shared prefix of the two
// vectors. Similarity is 0 when either sub-vector norm is zero.
func Cosine(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

func normalize(vec []float32) {
	var sum float64
	for _, x := range vec {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}
