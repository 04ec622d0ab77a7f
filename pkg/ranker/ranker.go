// Package ranker turns a user's interactions and their similarity matrix into
// a short, diversified list of recommended articles.
package ranker

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsrec/pkg/domain"
	"github.com/umputun/newsrec/pkg/similarity"
)

// MaxResults is the upper bound for the recommendation list length
const MaxResults = 5

// ErrMatrixMismatch is returned when the similarity matrix doesn't cover the candidate pool
var ErrMatrixMismatch = errors.New("similarity matrix size doesn't match candidates")

// Ranker selects top-N recommendations from a user's own interactions
type Ranker struct {
	limit int
}

// New makes a ranker returning up to limit results. Limit is clamped to [1, MaxResults].
func New(limit int) *Ranker {
	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}
	return &Ranker{limit: limit}
}

// Limit returns the maximum number of results
func (r *Ranker) Limit() int {
	return r.limit
}

// Rank is RankE with the mismatch error logged and swallowed
func (r *Ranker) Rank(candidates []domain.Interaction, m *similarity.Matrix) []domain.Recommendation {
	return r.RankRated(candidates, m, false)
}

// RankRated is Rank for a pool that was filtered before ranking. hasRatings reports rating data
// seen outside of candidates, e.g. dislikes removed by the caller, and keeps diversity mode on.
func (r *Ranker) RankRated(candidates []domain.Interaction, m *similarity.Matrix, hasRatings bool) []domain.Recommendation {
	res, err := r.rank(candidates, m, hasRatings)
	if err != nil {
		lgr.Printf("[WARN] can't rank %d candidates: %v", len(candidates), err)
		return []domain.Recommendation{}
	}
	return res
}

// RankE ranks candidates using rows of m, where m is indexed the same way as candidates.
// When any candidate carries a rating, categories with a positive rating are excluded and
// each row skips its own reference entry. Without rating data only duplicates are dropped.
// Candidates rated zero never make it to the result.
func (r *Ranker) RankE(candidates []domain.Interaction, m *similarity.Matrix) ([]domain.Recommendation, error) {
	return r.rank(candidates, m, false)
}

func (r *Ranker) rank(candidates []domain.Interaction, m *similarity.Matrix, hasRatings bool) ([]domain.Recommendation, error) {
	result := []domain.Recommendation{}
	if len(candidates) == 0 {
		return result, nil
	}
	if m.Size() != len(candidates) {
		return result, fmt.Errorf("%d candidates, matrix %d: %w", len(candidates), m.Size(), ErrMatrixMismatch)
	}

	liked, rated := likedCategories(candidates)
	rated = rated || hasRatings
	seen := make(map[domain.Recommendation]struct{}, r.limit)

	accept := func(j int) {
		c := candidates[j]
		if c.Disliked() {
			return
		}
		if _, ok := liked[c.Category]; ok {
			return
		}
		rec := domain.Recommendation{Title: c.ArticleTitle, Category: c.Category}
		if _, ok := seen[rec]; ok {
			return
		}
		seen[rec] = struct{}{}
		result = append(result, rec)
	}

	for i := range candidates {
		if candidates[i].Disliked() {
			continue
		}
		for _, j := range rankRow(m, i, !rated) {
			accept(j)
			if len(result) >= r.limit {
				return result, nil
			}
		}
	}
	return result, nil
}

// likedCategories returns categories with at least one positive rating and
// whether any candidate has a rating at all
func likedCategories(candidates []domain.Interaction) (liked map[string]struct{}, rated bool) {
	liked = make(map[string]struct{})
	for _, c := range candidates {
		if !c.Rated() {
			continue
		}
		rated = true
		if c.Liked() {
			liked[c.Category] = struct{}{}
		}
	}
	return liked, rated
}

// rankRow returns column indexes of row i ordered by descending similarity,
// ties broken by lower index. The reference entry i is included only if withSelf is set.
func rankRow(m *similarity.Matrix, i int, withSelf bool) []int {
	idx := make([]int, 0, m.Size())
	for j := 0; j < m.Size(); j++ {
		if j == i && !withSelf {
			continue
		}
		idx = append(idx, j)
	}
	row := m.Row(i)
	sort.SliceStable(idx, func(a, b int) bool {
		return row[idx[a]] > row[idx[b]]
	})
	return idx
}
