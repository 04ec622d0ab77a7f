package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsrec/pkg/domain"
)

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
	<channel>
		<title>Test Feed</title>
		<link>https://example.com</link>
		<description>Test feed description</description>
		<item>
			<title>Test Article 1</title>
			<link>https://example.com/article1</link>
			<description><![CDATA[<p>Article 1 <b>description</b> &amp; more</p>]]></description>
			<guid>article1</guid>
			<pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
		</item>
		<item>
			<title>Test Article 2</title>
			<link>https://example.com/article2</link>
			<description>Article 2 description</description>
		</item>
		<item>
			<title></title>
			<link>https://example.com/untitled</link>
		</item>
	</channel>
</rss>`

func rssServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(content))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestParser_Parse(t *testing.T) {
	t.Run("valid rss feed", func(t *testing.T) {
		ts := rssServer(t, testRSS)
		p := NewParser(5*time.Second, "test-agent")

		articles, err := p.Parse(context.Background(), domain.CatalogFeed{URL: ts.URL, Category: "Tech"})
		require.NoError(t, err)
		require.Len(t, articles, 2, "untitled item skipped")

		assert.Equal(t, "Test Article 1", articles[0].Title)
		assert.Equal(t, "Article 1 description & more", articles[0].Description)
		assert.Equal(t, "Tech", articles[0].Category)
		assert.Equal(t, "article1", articles[0].GUID)
		assert.Equal(t, "Test Feed", articles[0].Source)
		assert.False(t, articles[0].Published.IsZero())

		assert.Equal(t, "https://example.com/article2", articles[1].GUID, "guid falls back to link")
		assert.True(t, articles[1].Published.IsZero())
	})

	t.Run("category falls back to feed title", func(t *testing.T) {
		ts := rssServer(t, testRSS)
		articles, err := NewParser(5*time.Second, "test-agent").Parse(context.Background(), domain.CatalogFeed{URL: ts.URL})
		require.NoError(t, err)
		require.NotEmpty(t, articles)
		assert.Equal(t, "Test Feed", articles[0].Category)
	})

	t.Run("http error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		_, err := NewParser(5*time.Second, "test-agent").Parse(context.Background(), domain.CatalogFeed{URL: ts.URL})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 404")
	})

	t.Run("invalid feed", func(t *testing.T) {
		ts := rssServer(t, "not a feed")
		_, err := NewParser(5*time.Second, "test-agent").Parse(context.Background(), domain.CatalogFeed{URL: ts.URL})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse feed")
	})

	t.Run("canceled context", func(t *testing.T) {
		ts := rssServer(t, testRSS)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewParser(5*time.Second, "test-agent").Parse(ctx, domain.CatalogFeed{URL: ts.URL})
		require.Error(t, err)
	})
}

func TestCleanText(t *testing.T) {
	p := bluemonday.StrictPolicy()
	tests := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"<p>hello <b>world</b></p>", "hello world"},
		{"  spaced\n\tout  ", "spaced out"},
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"<script>alert(1)</script>safe", "safe"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(p, tt.in))
		})
	}
}
