package recommend

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/umputun/newsrec/pkg/domain"
	"github.com/umputun/newsrec/pkg/recommend/mocks"
	"github.com/umputun/newsrec/pkg/repository"
)

func storeWith(items ...domain.Interaction) *mocks.InteractionStoreMock {
	return &mocks.InteractionStoreMock{
		QueryByUserFunc: func(ctx context.Context, userID string) ([]domain.Interaction, error) {
			return items, nil
		},
	}
}

func TestService_Recommend(t *testing.T) {
	ctx := context.Background()

	t.Run("alice gets only the non-liked category", func(t *testing.T) {
		store := storeWith(
			domain.Interaction{UserID: "alice", ArticleTitle: "A", Category: "Sports", Description: "fast race car wins", Rating: domain.RatingPtr(1)},
			domain.Interaction{UserID: "alice", ArticleTitle: "B", Category: "Sports", Description: "race car speed", Rating: domain.RatingPtr(1)},
			domain.Interaction{UserID: "alice", ArticleTitle: "C", Category: "Tech", Description: "new laptop chip"},
		)
		svc := NewService(Config{Store: store})

		res, err := svc.Recommend(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []domain.Recommendation{{Title: "C", Category: "Tech"}}, res)
		require.Len(t, store.QueryByUserCalls(), 1)
		assert.Equal(t, "alice", store.QueryByUserCalls()[0].UserID)
	})

	t.Run("bob with only dislikes gets nothing", func(t *testing.T) {
		svc := NewService(Config{Store: storeWith(
			domain.Interaction{UserID: "bob", ArticleTitle: "A", Category: "Sports", Description: "race car", Rating: domain.RatingPtr(0)},
			domain.Interaction{UserID: "bob", ArticleTitle: "B", Category: "Tech", Description: "laptop", Rating: domain.RatingPtr(0)},
		)})

		res, err := svc.Recommend(ctx, "bob")
		require.NoError(t, err)
		assert.Empty(t, res)
		assert.NotNil(t, res)
	})

	t.Run("dave with one dislike stays in diversity mode", func(t *testing.T) {
		svc := NewService(Config{Store: storeWith(
			domain.Interaction{UserID: "dave", ArticleTitle: "X", Category: "Sports", Description: "race car", Rating: domain.RatingPtr(0)},
			domain.Interaction{UserID: "dave", ArticleTitle: "Y", Category: "Tech", Description: "new laptop chip"},
			domain.Interaction{UserID: "dave", ArticleTitle: "Z", Category: "Tech2", Description: "laptop battery"},
		)})

		res, err := svc.Recommend(ctx, "dave")
		require.NoError(t, err)
		assert.Equal(t, []domain.Recommendation{{Title: "Z", Category: "Tech2"}, {Title: "Y", Category: "Tech"}}, res)
	})

	t.Run("carol with identical descriptions", func(t *testing.T) {
		svc := NewService(Config{Store: storeWith(
			domain.Interaction{UserID: "carol", ArticleTitle: "A", Category: "Sports", Description: "same story text", Rating: domain.RatingPtr(1)},
			domain.Interaction{UserID: "carol", ArticleTitle: "B", Category: "Sports", Description: "same story text"},
			domain.Interaction{UserID: "carol", ArticleTitle: "C", Category: "Sports", Description: "same story text"},
		)})

		res, err := svc.Recommend(ctx, "carol")
		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("empty history", func(t *testing.T) {
		svc := NewService(Config{Store: storeWith()})
		res, err := svc.Recommend(ctx, "dave")
		require.NoError(t, err)
		assert.Empty(t, res)
		assert.NotNil(t, res)
	})

	t.Run("stop words only", func(t *testing.T) {
		svc := NewService(Config{Store: storeWith(
			domain.Interaction{UserID: "eve", ArticleTitle: "A", Category: "Sports", Description: "the and of"},
			domain.Interaction{UserID: "eve", ArticleTitle: "B", Category: "Tech", Description: ""},
		)})
		res, err := svc.Recommend(ctx, "eve")
		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("missing user id", func(t *testing.T) {
		store := storeWith()
		svc := NewService(Config{Store: store})
		_, err := svc.Recommend(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidUserReference)
		assert.Empty(t, store.QueryByUserCalls())
	})

	t.Run("store failure", func(t *testing.T) {
		svc := NewService(Config{Store: &mocks.InteractionStoreMock{
			QueryByUserFunc: func(ctx context.Context, userID string) ([]domain.Interaction, error) {
				return nil, errors.New("db down")
			},
		}})
		_, err := svc.Recommend(ctx, "alice")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
		assert.NotErrorIs(t, err, domain.ErrInvalidUserReference)
	})

	t.Run("other users never leak in", func(t *testing.T) {
		svc := NewService(Config{Store: storeWith(
			domain.Interaction{UserID: "alice", ArticleTitle: "A", Category: "Sports", Description: "race car", Rating: domain.RatingPtr(1)},
			domain.Interaction{UserID: "mallory", ArticleTitle: "M", Category: "Tech", Description: "race car laptop"},
			domain.Interaction{UserID: "alice", ArticleTitle: "C", Category: "Tech", Description: "laptop chip"},
		)})
		res, err := svc.Recommend(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []domain.Recommendation{{Title: "C", Category: "Tech"}}, res)
	})
}

func TestService_RecommendWindow(t *testing.T) {
	items := []domain.Interaction{
		{UserID: "u", ArticleTitle: "Old", Category: "Science", Description: "galaxy telescope"},
		{UserID: "u", ArticleTitle: "A", Category: "Sports", Description: "race car"},
		{UserID: "u", ArticleTitle: "B", Category: "Tech", Description: "laptop chip"},
	}

	res, err := NewService(Config{Store: storeWith(items...), Window: 2}).Recommend(context.Background(), "u")
	require.NoError(t, err)
	assert.Len(t, res, 2)
	for _, r := range res {
		assert.NotEqual(t, "Old", r.Title)
	}

	res, err = NewService(Config{Store: storeWith(items...)}).Recommend(context.Background(), "u")
	require.NoError(t, err)
	assert.Len(t, res, 3)
}

func TestService_RecommendLimit(t *testing.T) {
	items := make([]domain.Interaction, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, domain.Interaction{UserID: "u", ArticleTitle: fmt.Sprintf("T%d", i),
			Category: fmt.Sprintf("C%d", i), Description: fmt.Sprintf("common words item%d", i)})
	}

	res, err := NewService(Config{Store: storeWith(items...)}).Recommend(context.Background(), "u")
	require.NoError(t, err)
	assert.Len(t, res, 5)

	res, err = NewService(Config{Store: storeWith(items...), Limit: 3}).Recommend(context.Background(), "u")
	require.NoError(t, err)
	assert.Len(t, res, 3)
}

func TestService_History(t *testing.T) {
	store := storeWith(domain.Interaction{UserID: "alice", ArticleTitle: "A"})
	svc := NewService(Config{Store: store})

	res, err := svc.History(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, res, 1)

	_, err = svc.History(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidUserReference)
}

func TestService_WithRepository(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1, ConnMaxLifetime: time.Minute, BcryptCost: bcrypt.MinCost,
	})
	require.NoError(t, err)
	defer repos.Close()

	for _, in := range []domain.Interaction{
		{UserID: "alice", ArticleTitle: "A", Category: "Sports", Description: "fast race car wins", Rating: domain.RatingPtr(1)},
		{UserID: "alice", ArticleTitle: "B", Category: "Sports", Description: "race car speed", Rating: domain.RatingPtr(1)},
		{UserID: "alicex", ArticleTitle: "X", Category: "Tech", Description: "laptop chip race"},
		{UserID: "alice", ArticleTitle: "C", Category: "Tech", Description: "new laptop chip"},
	} {
		in := in
		require.NoError(t, repos.Interaction.Append(ctx, &in))
	}

	svc := NewService(Config{Store: repos.Interaction})
	res, err := svc.Recommend(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []domain.Recommendation{{Title: "C", Category: "Tech"}}, res)

	// repeated calls are deterministic
	for i := 0; i < 5; i++ {
		again, err := svc.Recommend(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, res, again)
	}

	res, err = svc.Recommend(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, res)
}
