package server

import (
	"context"

	"github.com/umputun/newsrec/pkg/domain"
	"github.com/umputun/newsrec/pkg/metrics"
	"github.com/umputun/newsrec/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos        *repository.Repositories
	interactions *repository.InteractionRepository
	users        *repository.UserRepository
	articles     *repository.ArticleRepository
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{
		repos:        repos,
		interactions: repos.Interaction,
		users:        repos.User,
		articles:     repos.Article,
	}
}

// AppendInteraction stores a tracked interaction and counts it
func (r *RepositoryAdapter) AppendInteraction(ctx context.Context, in *domain.Interaction) error {
	if err := r.interactions.Append(ctx, in); err != nil {
		return err
	}
	metrics.InteractionsTracked.Inc()
	return nil
}

// CreateUser registers a new user
func (r *RepositoryAdapter) CreateUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	return r.users.CreateUser(ctx, username, email, password)
}

// Authenticate checks user credentials
func (r *RepositoryAdapter) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	return r.users.Authenticate(ctx, username, password)
}

// GetArticles returns catalog articles matching the filter
func (r *RepositoryAdapter) GetArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	return r.articles.GetArticles(ctx, filter)
}

// GetCategories returns distinct catalog categories
func (r *RepositoryAdapter) GetCategories(ctx context.Context) ([]string, error) {
	return r.articles.GetCategories(ctx)
}

// Ping checks database connectivity
func (r *RepositoryAdapter) Ping(ctx context.Context) error {
	return r.repos.Ping(ctx)
}
