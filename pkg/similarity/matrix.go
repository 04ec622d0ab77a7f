package similarity

import (
	"fmt"

	"github.com/umputun/newsrec/pkg/domain"
)

// Matrix is a square, symmetric matrix of cosine similarity scores in [0,1]
type Matrix struct {
	size   int
	scores []float64 // row-major
}

// Compute vectorizes docs and returns the pairwise cosine similarity matrix.
// Entry (i,j) is the similarity of docs[i] and docs[j]; diagonal entries are 1
// for every document with at least one vocabulary term.
func Compute(docs []string) (*Matrix, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("compute similarity: %w", domain.ErrNoVocabulary)
	}

	vectorizer, err := Fit(docs)
	if err != nil {
		return nil, fmt.Errorf("compute similarity: %w", err)
	}

	vectors := make([][]float64, len(docs))
	for i, d := range docs {
		vectors[i] = vectorizer.Transform(d)
	}

	m := &Matrix{size: len(docs), scores: make([]float64, len(docs)*len(docs))}
	for i := 0; i < m.size; i++ {
		for j := i; j < m.size; j++ {
			s := clamp(dot(vectors[i], vectors[j]))
			m.scores[i*m.size+j] = s
			m.scores[j*m.size+i] = s
		}
	}
	return m, nil
}

// NewMatrix builds a matrix from explicit rows, mostly useful in tests.
// All rows must have the same length as the number of rows.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	m := &Matrix{size: len(rows), scores: make([]float64, 0, len(rows)*len(rows))}
	for i, r := range rows {
		if len(r) != len(rows) {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", i, len(r), len(rows))
		}
		m.scores = append(m.scores, r...)
	}
	return m, nil
}

// Size returns the number of rows (and columns)
func (m *Matrix) Size() int {
	if m == nil {
		return 0
	}
	return m.size
}

// At returns the similarity between documents i and j
func (m *Matrix) At(i, j int) float64 {
	return m.scores[i*m.size+j]
}

// Row returns a copy of row i
func (m *Matrix) Row(i int) []float64 {
	res := make([]float64, m.size)
	copy(res, m.scores[i*m.size:(i+1)*m.size])
	return res
}

func dot(a, b []float64) float64 {
	var res float64
	for i := range a {
		res += a[i] * b[i]
	}
	return res
}

// clamp keeps float rounding from pushing scores outside [0,1]
func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
