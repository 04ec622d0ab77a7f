package ranker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsrec/pkg/domain"
	"github.com/umputun/newsrec/pkg/similarity"
)

func interaction(title, category, description string, rating *int) domain.Interaction {
	return domain.Interaction{UserID: "test", ArticleTitle: title, Category: category, Description: description, Rating: rating}
}

func matrixFor(t *testing.T, items []domain.Interaction) *similarity.Matrix {
	t.Helper()
	docs := make([]string, len(items))
	for i, it := range items {
		docs[i] = it.Description
	}
	m, err := similarity.Compute(docs)
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	assert.Equal(t, 5, New(0).Limit())
	assert.Equal(t, 5, New(-1).Limit())
	assert.Equal(t, 5, New(10).Limit())
	assert.Equal(t, 3, New(3).Limit())
}

func TestRanker_Rank(t *testing.T) {
	r := New(MaxResults)

	t.Run("liked categories are excluded", func(t *testing.T) {
		items := []domain.Interaction{
			interaction("A", "Sports", "fast race car wins", domain.RatingPtr(1)),
			interaction("B", "Sports", "race car speed", domain.RatingPtr(1)),
			interaction("C", "Tech", "new laptop chip", nil),
		}
		res := r.Rank(items, matrixFor(t, items))
		assert.Equal(t, []domain.Recommendation{{Title: "C", Category: "Tech"}}, res)
	})

	t.Run("only liked categories gives empty result", func(t *testing.T) {
		items := []domain.Interaction{
			interaction("A", "Sports", "fast race car wins", domain.RatingPtr(2)),
			interaction("B", "Sports", "race car speed", nil),
		}
		res := r.Rank(items, matrixFor(t, items))
		assert.Empty(t, res)
		assert.NotNil(t, res)
	})

	t.Run("disliked never returned", func(t *testing.T) {
		items := []domain.Interaction{
			interaction("A", "Sports", "race car", domain.RatingPtr(1)),
			interaction("B", "Tech", "race car laptop", domain.RatingPtr(0)),
			interaction("C", "Tech", "race laptop chip", nil),
		}
		res := r.Rank(items, matrixFor(t, items))
		assert.Equal(t, []domain.Recommendation{{Title: "C", Category: "Tech"}}, res)
	})

	t.Run("ordered by similarity to reference", func(t *testing.T) {
		items := []domain.Interaction{
			interaction("Ref", "Sports", "football match goal striker", domain.RatingPtr(1)),
			interaction("Far", "Science", "telescope galaxy", nil),
			interaction("Near", "Business", "football club striker transfer", nil),
			interaction("Mid", "Culture", "stadium match concert", nil),
		}
		res := r.Rank(items, matrixFor(t, items))
		require.Len(t, res, 3)
		assert.Equal(t, "Near", res[0].Title)
		assert.Equal(t, "Mid", res[1].Title)
		assert.Equal(t, "Far", res[2].Title)
	})

	t.Run("duplicate pairs collapsed", func(t *testing.T) {
		items := []domain.Interaction{
			interaction("A", "Sports", "race car", domain.RatingPtr(1)),
			interaction("C", "Tech", "laptop chip", nil),
			interaction("C", "Tech", "laptop chip again", nil),
		}
		res := r.Rank(items, matrixFor(t, items))
		assert.Equal(t, []domain.Recommendation{{Title: "C", Category: "Tech"}}, res)
	})

	t.Run("no rating data falls back to plain similarity", func(t *testing.T) {
		items := []domain.Interaction{
			interaction("A", "Sports", "race car", nil),
			interaction("B", "Tech", "laptop chip", nil),
			interaction("C", "Sports", "race car speed", nil),
		}
		res := r.Rank(items, matrixFor(t, items))
		assert.Equal(t, []domain.Recommendation{
			{Title: "A", Category: "Sports"},
			{Title: "C", Category: "Sports"},
			{Title: "B", Category: "Tech"},
		}, res)
	})

	t.Run("identical descriptions", func(t *testing.T) {
		items := []domain.Interaction{
			interaction("A", "Sports", "same story", domain.RatingPtr(1)),
			interaction("B", "Sports", "same story", domain.RatingPtr(1)),
			interaction("C", "Sports", "same story", nil),
		}
		res := r.Rank(items, matrixFor(t, items))
		assert.Empty(t, res)
	})

	t.Run("single rated non-liked entry has nothing to compare with", func(t *testing.T) {
		items := []domain.Interaction{interaction("A", "Sports", "race car", domain.RatingPtr(-1))}
		res := r.Rank(items, matrixFor(t, items))
		assert.Empty(t, res)
	})

	t.Run("empty candidates", func(t *testing.T) {
		res := r.Rank(nil, nil)
		assert.Empty(t, res)
		assert.NotNil(t, res)
	})
}

func TestRanker_RankLimit(t *testing.T) {
	items := make([]domain.Interaction, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, interaction(fmt.Sprintf("T%d", i), fmt.Sprintf("C%d", i), fmt.Sprintf("shared words topic%d", i), nil))
	}
	m := matrixFor(t, items)

	res := New(MaxResults).Rank(items, m)
	assert.Len(t, res, MaxResults)

	res = New(2).Rank(items, m)
	assert.Len(t, res, 2)

	seen := map[domain.Recommendation]bool{}
	for _, rec := range New(MaxResults).Rank(items, m) {
		assert.False(t, seen[rec], "duplicate %v", rec)
		seen[rec] = true
	}
}

func TestRanker_RankE(t *testing.T) {
	items := []domain.Interaction{
		interaction("A", "Sports", "race car", nil),
		interaction("B", "Tech", "laptop chip", nil),
	}
	m, err := similarity.NewMatrix([][]float64{{1}})
	require.NoError(t, err)

	res, err := New(MaxResults).RankE(items, m)
	require.ErrorIs(t, err, ErrMatrixMismatch)
	assert.Empty(t, res)

	assert.Empty(t, New(MaxResults).Rank(items, m))
}

func TestRanker_RankRated(t *testing.T) {
	items := []domain.Interaction{
		interaction("Y", "Tech", "new laptop chip", nil),
		interaction("Z", "Tech2", "laptop battery", nil),
	}
	m := matrixFor(t, items)
	r := New(MaxResults)

	// no ratings at all, each row starts with its own entry
	assert.Equal(t, []domain.Recommendation{{Title: "Y", Category: "Tech"}, {Title: "Z", Category: "Tech2"}}, r.Rank(items, m))
	assert.Equal(t, r.Rank(items, m), r.RankRated(items, m, false))

	// ratings filtered out by the caller still skip the reference entry
	assert.Equal(t, []domain.Recommendation{{Title: "Z", Category: "Tech2"}, {Title: "Y", Category: "Tech"}}, r.RankRated(items, m, true))

	bad, err := similarity.NewMatrix([][]float64{{1}})
	require.NoError(t, err)
	assert.Empty(t, r.RankRated(items, bad, true))
}

func TestRanker_Deterministic(t *testing.T) {
	items := []domain.Interaction{
		interaction("A", "Sports", "race car wins", domain.RatingPtr(1)),
		interaction("B", "Tech", "laptop chip race", nil),
		interaction("C", "Science", "chip research lab", nil),
		interaction("D", "Tech", "car laptop", domain.RatingPtr(-2)),
	}
	r := New(MaxResults)
	first := r.Rank(items, matrixFor(t, items))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Rank(items, matrixFor(t, items)))
	}
}
