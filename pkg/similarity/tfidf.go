// Package similarity turns article descriptions into tf-idf vectors and scores them
// against each other with cosine similarity.
package similarity

import (
	"fmt"
	"math"
	"sort"

	"github.com/umputun/newsrec/pkg/domain"
)

// Vectorizer holds the vocabulary and idf weights learned from a document set.
// It is built per request and never shared.
type Vectorizer struct {
	vocabulary map[string]int // term -> column
	idf        []float64
}

// Fit builds the vocabulary and smoothed idf weights for docs.
// Returns domain.ErrNoVocabulary if no document has a single term left after stop-word removal.
func Fit(docs []string) (*Vectorizer, error) {
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range Tokenize(doc) {
			if !seen[tok] {
				docFreq[tok]++
				seen[tok] = true
			}
		}
	}
	if len(docFreq) == 0 {
		return nil, fmt.Errorf("fit %d documents: %w", len(docs), domain.ErrNoVocabulary)
	}

	// sorted terms give stable column order, so identical input always yields identical vectors
	terms := make([]string, 0, len(docFreq))
	for t := range docFreq {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	v := &Vectorizer{vocabulary: make(map[string]int, len(terms)), idf: make([]float64, len(terms))}
	n := float64(len(docs))
	for i, t := range terms {
		v.vocabulary[t] = i
		// idf = ln((1+n)/(1+df)) + 1
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}
	return v, nil
}

// vocabularySize returns the number of distinct terms
func (v *Vectorizer) vocabularySize() int {
	return len(v.vocabulary)
}

// Transform converts text to an L2-normalized tf-idf vector over the learned vocabulary.
// Text with no known terms yields a zero vector.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.vocabulary))
	for _, tok := range Tokenize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for i, cnt := range vec {
		if cnt == 0 {
			continue
		}
		vec[i] = cnt * v.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
