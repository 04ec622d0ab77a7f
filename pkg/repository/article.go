package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsrec/pkg/domain"
)

// ArticleRepository handles the browsable article catalog
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID          int64      `db:"id"`
	GUID        string     `db:"guid"`
	Title       string     `db:"title"`
	Link        string     `db:"link"`
	Category    string     `db:"category"`
	Description string     `db:"description"`
	Source      string     `db:"source"`
	Published   *time.Time `db:"published"`
	CreatedAt   time.Time  `db:"created_at"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// SaveArticle inserts the article unless one with the same GUID exists.
// Returns true if a new row was created.
func (r *ArticleRepository) SaveArticle(ctx context.Context, a *domain.Article) (bool, error) {
	rec := &articleSQL{
		GUID:        a.GUID,
		Title:       a.Title,
		Link:        a.Link,
		Category:    a.Category,
		Description: a.Description,
		Source:      a.Source,
		CreatedAt:   time.Now().UTC(),
	}
	if !a.Published.IsZero() {
		pub := a.Published.UTC()
		rec.Published = &pub
	}

	query := `
		INSERT INTO articles (guid, title, link, category, description, source, published, created_at)
		VALUES (:guid, :title, :link, :category, :description, :source, :published, :created_at)
		ON CONFLICT(guid) DO NOTHING
	`
	var created bool
	err := withLockRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, rec)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save article: %w", err)}
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		if created = affected > 0; created {
			if a.ID, err = result.LastInsertId(); err != nil {
				return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
			}
		}
		return nil
	})
	return created, err
}

// GetArticles returns articles, most recent first, optionally filtered by category
func (r *ArticleRepository) GetArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	query := "SELECT * FROM articles"
	args := []interface{}{}
	if filter.Category != "" {
		query += " WHERE category = ?"
		args = append(args, filter.Category)
	}
	query += " ORDER BY published DESC, id DESC LIMIT ?"
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)

	var recs []articleSQL
	if err := r.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}

	res := make([]domain.Article, len(recs))
	for i := range recs {
		res[i] = r.toDomainArticle(&recs[i])
	}
	return res, nil
}

// GetCategories returns distinct article categories
func (r *ArticleRepository) GetCategories(ctx context.Context) ([]string, error) {
	var res []string
	if err := r.db.SelectContext(ctx, &res, "SELECT DISTINCT category FROM articles ORDER BY category"); err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return res, nil
}

// toDomainArticle converts articleSQL to domain.Article
func (r *ArticleRepository) toDomainArticle(rec *articleSQL) domain.Article {
	res := domain.Article{
		ID:          rec.ID,
		GUID:        rec.GUID,
		Title:       rec.Title,
		Link:        rec.Link,
		Category:    rec.Category,
		Description: rec.Description,
		Source:      rec.Source,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.Published != nil {
		res.Published = *rec.Published
	}
	return res
}
