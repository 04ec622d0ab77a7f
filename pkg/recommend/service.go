// Package recommend orchestrates recommendation requests: it reads a user's interactions
// from the store, scores their descriptions and ranks the result.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsrec/pkg/domain"
	"github.com/umputun/newsrec/pkg/metrics"
	"github.com/umputun/newsrec/pkg/ranker"
	"github.com/umputun/newsrec/pkg/similarity"
)

//go:generate moq -out mocks/interaction_store.go -pkg mocks -skip-ensure -fmt goimports . InteractionStore

// InteractionStore provides read access to the interaction log
type InteractionStore interface {
	QueryByUser(ctx context.Context, userID string) ([]domain.Interaction, error)
}

// Service computes recommendations for one user at a time.
// It keeps no state between calls and is safe for concurrent use.
type Service struct {
	store  InteractionStore
	ranker *ranker.Ranker
	window int
}

// Config holds configuration for Service
type Config struct {
	Store  InteractionStore
	Limit  int // max recommendations, clamped to ranker.MaxResults
	Window int // most recent interactions to consider, 0 means all
}

// NewService creates a recommendation service with the provided configuration
func NewService(cfg Config) *Service {
	window := cfg.Window
	if window < 0 {
		window = 0
	}
	return &Service{
		store:  cfg.Store,
		ranker: ranker.New(cfg.Limit),
		window: window,
	}
}

// Recommend returns up to ranker.MaxResults recommendations for the user.
// Empty history and descriptions without vocabulary yield an empty list, not an error.
// Missing user id returns domain.ErrInvalidUserReference.
func (s *Service) Recommend(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	started := time.Now()

	res, err := s.recommend(ctx, userID)
	switch {
	case err == nil:
		metrics.RecordRecommendation(metrics.OutcomeOK, started, len(res))
		return res, nil
	case errors.Is(err, domain.ErrEmptyHistory):
		lgr.Printf("[DEBUG] no interactions found for user %q", userID)
		metrics.RecordRecommendation(metrics.OutcomeEmptyHistory, started, 0)
		return []domain.Recommendation{}, nil
	case errors.Is(err, domain.ErrNoVocabulary):
		lgr.Printf("[DEBUG] no usable vocabulary for user %q: %v", userID, err)
		metrics.RecordRecommendation(metrics.OutcomeNoVocabulary, started, 0)
		return []domain.Recommendation{}, nil
	case errors.Is(err, domain.ErrInvalidUserReference):
		metrics.RecordRecommendation(metrics.OutcomeInvalidUser, started, 0)
		return nil, err
	default:
		metrics.RecordRecommendation(metrics.OutcomeError, started, 0)
		return nil, err
	}
}

// History returns all interactions of the user in insertion order
func (s *Service) History(ctx context.Context, userID string) ([]domain.Interaction, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserReference
	}
	res, err := s.store.QueryByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return res, nil
}

func (s *Service) recommend(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserReference
	}

	history, err := s.store.QueryByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get interactions: %w", err)
	}
	if len(history) == 0 {
		return nil, domain.ErrEmptyHistory
	}

	pool, rated := candidatePool(history, userID, s.window)
	if len(pool) == 0 {
		return []domain.Recommendation{}, nil
	}

	docs := make([]string, len(pool))
	for i, in := range pool {
		docs[i] = in.Description
	}

	m, err := similarity.Compute(docs)
	if err != nil {
		return nil, err
	}

	lgr.Printf("[DEBUG] ranking %d of %d interactions for user %q, limit %d", len(pool), len(history), userID, s.ranker.Limit())
	return s.ranker.RankRated(pool, m, rated), nil
}

// candidatePool keeps the most recent window interactions (all if window is 0)
// belonging to userID, in their original order, without explicit dislikes.
// rated is set if any of the user's windowed interactions, dislikes included, has a rating.
func candidatePool(history []domain.Interaction, userID string, window int) (pool []domain.Interaction, rated bool) {
	if window > 0 && len(history) > window {
		history = history[len(history)-window:]
	}
	pool = make([]domain.Interaction, 0, len(history))
	for _, in := range history {
		if in.UserID != userID {
			continue
		}
		if in.Rated() {
			rated = true
		}
		if in.Disliked() {
			continue
		}
		pool = append(pool, in)
	}
	return pool, rated
}
