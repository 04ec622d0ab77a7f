package domain

import "time"

// Article represents a browsable news article imported from a catalog feed
type Article struct {
	ID          int64
	GUID        string
	Title       string
	Link        string
	Category    string
	Description string
	Source      string
	Published   time.Time
	CreatedAt   time.Time
}

// ArticleFilter represents filtering criteria for articles
type ArticleFilter struct {
	Category string
	Limit    int
}

// CatalogFeed is a configured feed source for the article catalog
type CatalogFeed struct {
	URL      string
	Category string
}
