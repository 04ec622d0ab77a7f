// Package catalog imports browsable news articles from RSS/Atom feeds.
package catalog

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsrec/pkg/domain"
)

// Parser fetches a feed and converts its items to catalog articles
type Parser struct {
	client    *http.Client
	userAgent string
	sanitizer *bluemonday.Policy
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Parse fetches the feed and returns its items as articles.
// Category falls back to the feed title when the configured one is empty.
func (p *Parser) Parse(ctx context.Context, src domain.CatalogFeed) ([]domain.Article, error) {
	body, err := p.fetch(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	category := src.Category
	if category == "" {
		category = strings.TrimSpace(feed.Title)
	}
	if category == "" {
		category = src.URL
	}

	res := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		article := domain.Article{
			Title:       CleanText(p.sanitizer, item.Title),
			Link:        item.Link,
			Category:    category,
			Description: CleanText(p.sanitizer, item.Description),
			Source:      feed.Title,
		}
		if article.Title == "" {
			continue
		}

		switch {
		case item.GUID != "":
			article.GUID = item.GUID
		case item.Link != "":
			article.GUID = item.Link
		default:
			article.GUID = fmt.Sprintf("%s-%s", feed.Title, item.Title)
		}

		if item.PublishedParsed != nil {
			article.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			article.Published = *item.UpdatedParsed
		}
		res = append(res, article)
	}
	return res, nil
}

// CleanText strips markup with the policy, unescapes entities and collapses whitespace
func CleanText(policy *bluemonday.Policy, s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(policy.Sanitize(s))), " ")
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
