package recommender

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/apteva/apteva/internal/catalog"
)

const normEpsilon = 1e-10

var tokenPattern = regexp.MustCompile(`[a-z0-9][a-z0-9+#-]+`)

// TextIndex is a bag-of-n-grams vector space model over the catalogue
// documents. It is built once at startup and immutable afterwards, so
// concurrent reads need no locking.
type TextIndex struct {
	vocabulary map[string]int // term -> column
	idf        []float64
	docVectors [][]float64 // one L2-normalized vector per catalogue item
	itemIDs    []string
}

// NewTextIndex builds the vector space from the catalogue, using unigrams
// through trigrams with sublinear term frequency and smoothed inverse
// document frequency, capped to maxFeatures terms by corpus frequency.
func NewTextIndex(cat catalog.Catalog, maxFeatures int) *TextIndex {
	docs := make([][]string, len(cat))
	ids := make([]string, len(cat))
	for i, a := range cat {
		docs[i] = ngrams(tokenize(catalog.Document(a)))
		ids[i] = a.ID
	}

	// Cap the vocabulary to the most frequent terms across the corpus,
	// ties broken alphabetically for determinism.
	counts := make(map[string]int)
	for _, terms := range docs {
		for _, t := range terms {
			counts[t]++
		}
	}
	terms := make([]string, 0, len(counts))
	for t := range counts {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if maxFeatures > 0 && len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	vocab := make(map[string]int, len(terms))
	for i, t := range terms {
		vocab[t] = i
	}

	// Smoothed IDF: ln((1+n)/(1+df)) + 1.
	df := make([]int, len(vocab))
	for _, terms := range docs {
		seen := make(map[int]bool)
		for _, t := range terms {
			if col, ok := vocab[t]; ok && !seen[col] {
				seen[col] = true
				df[col]++
			}
		}
	}
	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for col, d := range df {
		idf[col] = math.Log((1+n)/(1+float64(d))) + 1
	}

	idx := &TextIndex{
		vocabulary: vocab,
		idf:        idf,
		itemIDs:    ids,
		docVectors: make([][]float64, len(docs)),
	}
	for i, terms := range docs {
		idx.docVectors[i] = idx.vectorize(terms)
	}
	return idx
}

// Similarities projects the query into the index's vector space and returns
// one cosine score per catalogue item, in catalogue order. Scores are
// normalized by the maximum observed score for this query, so the best
// match reports 1.0; scores are relative within a result set, not globally
// comparable.
func (idx *TextIndex) Similarities(query string) []float64 {
	qv := idx.vectorize(ngrams(tokenize(strings.ToLower(query))))

	scores := make([]float64, len(idx.docVectors))
	var max float64
	for i, dv := range idx.docVectors {
		// Both vectors are L2-normalized, so the dot product is the cosine.
		scores[i] = floats.Dot(qv, dv)
		if scores[i] > max {
			max = scores[i]
		}
	}
	floats.Scale(1/(max+normEpsilon), scores)
	return scores
}

// VocabularySize reports the number of indexed terms.
func (idx *TextIndex) VocabularySize() int {
	return len(idx.vocabulary)
}

// EmbeddingsCount reports the number of indexed item vectors.
func (idx *TextIndex) EmbeddingsCount() int {
	return len(idx.docVectors)
}

// vectorize builds a sublinear TF-IDF vector, L2-normalized.
func (idx *TextIndex) vectorize(terms []string) []float64 {
	vec := make([]float64, len(idx.vocabulary))
	for _, t := range terms {
		if col, ok := idx.vocabulary[t]; ok {
			vec[col]++
		}
	}
	for col, tf := range vec {
		if tf > 0 {
			vec[col] = (1 + math.Log(tf)) * idx.idf[col]
		}
	}
	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

// tokenize splits lowercased text into word tokens, dropping stop words and
// single-character fragments.
func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if !stopWords[t] {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// ngrams expands a token stream into unigrams, bigrams and trigrams.
func ngrams(tokens []string) []string {
	out := make([]string, 0, len(tokens)*3)
	for i := range tokens {
		out = append(out, tokens[i])
		if i+1 < len(tokens) {
			out = append(out, tokens[i]+" "+tokens[i+1])
		}
		if i+2 < len(tokens) {
			out = append(out, tokens[i]+" "+tokens[i+1]+" "+tokens[i+2])
		}
	}
	return out
}

var stopWords = makeStopWords()

func makeStopWords() map[string]bool {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "am",
		"an", "and", "any", "are", "as", "at", "be", "because", "been",
		"before", "being", "below", "between", "both", "but", "by", "can",
		"did", "do", "does", "doing", "down", "during", "each", "few",
		"for", "from", "further", "had", "has", "have", "having", "he",
		"her", "here", "hers", "him", "his", "how", "i", "if", "in",
		"into", "is", "it", "its", "just", "me", "more", "most", "my",
		"no", "nor", "not", "now", "of", "off", "on", "once", "only",
		"or", "other", "our", "ours", "out", "over", "own", "same", "she",
		"should", "so", "some", "such", "than", "that", "the", "their",
		"theirs", "them", "then", "there", "these", "they", "this",
		"those", "through", "to", "too", "under", "until", "up", "very",
		"was", "we", "were", "what", "when", "where", "which", "while",
		"who", "whom", "why", "will", "with", "you", "your", "yours",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
