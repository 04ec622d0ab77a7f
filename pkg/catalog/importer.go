package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsrec/pkg/domain"
	"github.com/umputun/newsrec/pkg/metrics"
)

//go:generate moq -out mocks/feed_parser.go -pkg mocks -skip-ensure -fmt goimports . FeedParser
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore

// FeedParser fetches and parses one catalog feed
type FeedParser interface {
	Parse(ctx context.Context, src domain.CatalogFeed) ([]domain.Article, error)
}

// ArticleStore persists catalog articles
type ArticleStore interface {
	SaveArticle(ctx context.Context, a *domain.Article) (bool, error)
}

// DefaultAdKeywords marks promotional articles excluded from the catalog
var DefaultAdKeywords = []string{
	"sponsored", "advertisement", "promotion", "advertorial", "paid content",
	"partnered", "affiliate", "clickbait", "subscribe", "deal", "discount",
	"sale", "offer", "shop now", "buy now", "sweepstakes",
}

// Importer periodically pulls configured feeds into the article catalog
type Importer struct {
	parser     FeedParser
	store      ArticleStore
	feeds      []domain.CatalogFeed
	interval   time.Duration
	maxWorkers int
	adKeywords []string

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// ImporterConfig holds configuration for Importer
type ImporterConfig struct {
	Parser     FeedParser
	Store      ArticleStore
	Feeds      []domain.CatalogFeed
	Interval   time.Duration
	MaxWorkers int
	AdKeywords []string // nil means DefaultAdKeywords
}

// NewImporter creates a catalog importer
func NewImporter(cfg ImporterConfig) *Importer {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Minute
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 5
	}
	if cfg.AdKeywords == nil {
		cfg.AdKeywords = DefaultAdKeywords
	}
	keywords := make([]string, len(cfg.AdKeywords))
	for i, k := range cfg.AdKeywords {
		keywords[i] = strings.ToLower(k)
	}

	return &Importer{
		parser:     cfg.Parser,
		store:      cfg.Store,
		feeds:      cfg.Feeds,
		interval:   cfg.Interval,
		maxWorkers: cfg.MaxWorkers,
		adKeywords: keywords,
	}
}

// Start runs the import loop in background, first pass runs immediately
func (im *Importer) Start(ctx context.Context) {
	ctx, im.cancel = context.WithCancel(ctx)

	im.wg.Add(1)
	go func() {
		defer im.wg.Done()
		ticker := time.NewTicker(im.interval)
		defer ticker.Stop()

		im.ImportAll(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				im.ImportAll(ctx)
			}
		}
	}()

	lgr.Printf("[INFO] catalog importer started for %d feeds, interval %v", len(im.feeds), im.interval)
}

// Stop cancels the import loop and waits for it to finish
func (im *Importer) Stop() {
	if im.cancel != nil {
		im.cancel()
	}
	im.wg.Wait()
	lgr.Printf("[INFO] catalog importer stopped")
}

// ImportAll imports every configured feed with up to maxWorkers in parallel
// and returns the number of new articles. A failing feed doesn't stop the others.
func (im *Importer) ImportAll(ctx context.Context) int {
	var (
		mu    sync.Mutex
		total int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(im.maxWorkers)
	for _, f := range im.feeds {
		g.Go(func() error {
			n := im.importFeed(ctx, f)
			mu.Lock()
			total += n
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	lgr.Printf("[DEBUG] catalog import completed, %d new articles", total)
	return total
}

// importFeed stores new, non-promotional articles of a single feed
func (im *Importer) importFeed(ctx context.Context, f domain.CatalogFeed) int {
	articles, err := im.parser.Parse(ctx, f)
	if err != nil {
		metrics.FeedErrors.Inc()
		lgr.Printf("[WARN] failed to import feed %s: %v", f.URL, err)
		return 0
	}

	added := 0
	for i := range articles {
		a := &articles[i]
		if im.isPromotional(a) {
			lgr.Printf("[DEBUG] skip promotional article %q", a.Title)
			continue
		}
		created, err := im.store.SaveArticle(ctx, a)
		if err != nil {
			lgr.Printf("[WARN] failed to save article %q: %v", a.Title, err)
			continue
		}
		if created {
			added++
			metrics.ArticlesImported.WithLabelValues(a.Category).Inc()
		}
	}

	if added > 0 {
		lgr.Printf("[INFO] added %d articles from %s", added, f.URL)
	}
	return added
}

// isPromotional checks title and description against ad keywords
func (im *Importer) isPromotional(a *domain.Article) bool {
	title, desc := strings.ToLower(a.Title), strings.ToLower(a.Description)
	for _, k := range im.adKeywords {
		if strings.Contains(title, k) || strings.Contains(desc, k) {
			return true
		}
	}
	return false
}
