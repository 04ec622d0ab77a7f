package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsrec/pkg/catalog/mocks"
	"github.com/umputun/newsrec/pkg/domain"
)

func TestImporter_ImportAll(t *testing.T) {
	parser := &mocks.FeedParserMock{
		ParseFunc: func(ctx context.Context, src domain.CatalogFeed) ([]domain.Article, error) {
			switch src.URL {
			case "http://sports":
				return []domain.Article{
					{GUID: "s1", Title: "Race car wins", Category: src.Category},
					{GUID: "s2", Title: "Big SALE on running shoes", Category: src.Category},
					{GUID: "s3", Title: "Match report", Description: "Sponsored by a bank", Category: src.Category},
				}, nil
			case "http://tech":
				return []domain.Article{
					{GUID: "t1", Title: "New laptop chip", Category: src.Category},
					{GUID: "t2", Title: "Already stored", Category: src.Category},
				}, nil
			default:
				return nil, errors.New("connection refused")
			}
		},
	}

	var mu sync.Mutex
	saved := map[string]bool{}
	store := &mocks.ArticleStoreMock{
		SaveArticleFunc: func(ctx context.Context, a *domain.Article) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			saved[a.GUID] = true
			return a.GUID != "t2", nil
		},
	}

	im := NewImporter(ImporterConfig{
		Parser: parser,
		Store:  store,
		Feeds: []domain.CatalogFeed{
			{URL: "http://sports", Category: "Sports"},
			{URL: "http://tech", Category: "Tech"},
			{URL: "http://broken", Category: "Science"},
		},
		MaxWorkers: 2,
	})

	n := im.ImportAll(context.Background())
	assert.Equal(t, 2, n)
	assert.Len(t, parser.ParseCalls(), 3)
	assert.Equal(t, map[string]bool{"s1": true, "t1": true, "t2": true}, saved, "promotional articles never stored")
}

func TestImporter_SaveError(t *testing.T) {
	im := NewImporter(ImporterConfig{
		Parser: &mocks.FeedParserMock{
			ParseFunc: func(ctx context.Context, src domain.CatalogFeed) ([]domain.Article, error) {
				return []domain.Article{{GUID: "a", Title: "first"}, {GUID: "b", Title: "second"}}, nil
			},
		},
		Store: &mocks.ArticleStoreMock{
			SaveArticleFunc: func(ctx context.Context, a *domain.Article) (bool, error) {
				if a.GUID == "a" {
					return false, errors.New("locked")
				}
				return true, nil
			},
		},
		Feeds: []domain.CatalogFeed{{URL: "http://one"}},
	})
	assert.Equal(t, 1, im.ImportAll(context.Background()))
}

func TestImporter_IsPromotional(t *testing.T) {
	im := NewImporter(ImporterConfig{})
	tests := []struct {
		title, desc string
		want        bool
	}{
		{"Election results", "votes counted overnight", false},
		{"Shop Now for summer", "", true},
		{"Weekly roundup", "an Advertorial from our partner", true},
		{"Sweepstakes winner announced", "", true},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, im.isPromotional(&domain.Article{Title: tt.title, Description: tt.desc}))
		})
	}

	custom := NewImporter(ImporterConfig{AdKeywords: []string{"Crypto"}})
	assert.True(t, custom.isPromotional(&domain.Article{Title: "crypto moon"}))
	assert.False(t, custom.isPromotional(&domain.Article{Title: "big sale"}))
}

func TestImporter_StartStop(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	im := NewImporter(ImporterConfig{
		Parser: &mocks.FeedParserMock{
			ParseFunc: func(ctx context.Context, src domain.CatalogFeed) ([]domain.Article, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return nil, nil
			},
		},
		Store:    &mocks.ArticleStoreMock{},
		Feeds:    []domain.CatalogFeed{{URL: "http://one"}},
		Interval: 20 * time.Millisecond,
	})

	im.Start(context.Background())
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 2
	}, time.Second, 10*time.Millisecond)
	im.Stop()

	mu.Lock()
	stopped := calls
	mu.Unlock()
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, stopped, calls, "no imports after stop")
	mu.Unlock()
}
