package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsrec/pkg/domain"
)

// InteractionRepository is the append-only interaction log
type InteractionRepository struct {
	db *sqlx.DB
}

// interactionSQL represents an interaction for SQL operations
type interactionSQL struct {
	ID           int64         `db:"id"`
	UserID       string        `db:"user_id"`
	ArticleTitle string        `db:"article_title"`
	Category     string        `db:"category"`
	Description  string        `db:"description"`
	Rating       sql.NullInt64 `db:"rating"`
	CreatedAt    time.Time     `db:"created_at"`
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(database *sqlx.DB) *InteractionRepository {
	return &InteractionRepository{db: database}
}

// Append records a new interaction. ID and Timestamp are set on success.
func (r *InteractionRepository) Append(ctx context.Context, in *domain.Interaction) error {
	if in.UserID == "" {
		return domain.ErrInvalidUserReference
	}

	rec := &interactionSQL{
		UserID:       in.UserID,
		ArticleTitle: in.ArticleTitle,
		Category:     in.Category,
		Description:  in.Description,
		CreatedAt:    in.Timestamp,
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if in.Rating != nil {
		rec.Rating = sql.NullInt64{Int64: int64(*in.Rating), Valid: true}
	}

	query := `
		INSERT INTO interactions (user_id, article_title, category, description, rating, created_at)
		VALUES (:user_id, :article_title, :category, :description, :rating, :created_at)
	`
	return withLockRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, rec)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("append interaction: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		in.ID = id
		in.Timestamp = rec.CreatedAt
		return nil
	})
}

// QueryByUser returns all interactions of the user in insertion order.
// The user id is matched exactly.
func (r *InteractionRepository) QueryByUser(ctx context.Context, userID string) ([]domain.Interaction, error) {
	var recs []interactionSQL
	query := `SELECT * FROM interactions WHERE user_id = ? ORDER BY id ASC`
	if err := r.db.SelectContext(ctx, &recs, query, userID); err != nil {
		return nil, fmt.Errorf("query interactions for %q: %w", userID, err)
	}

	res := make([]domain.Interaction, len(recs))
	for i := range recs {
		res[i] = r.toDomainInteraction(&recs[i])
	}
	return res, nil
}

// countByUser returns the number of interactions recorded for the user
func (r *InteractionRepository) countByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM interactions WHERE user_id = ?", userID); err != nil {
		return 0, fmt.Errorf("count interactions: %w", err)
	}
	return count, nil
}

// toDomainInteraction converts interactionSQL to domain.Interaction
func (r *InteractionRepository) toDomainInteraction(rec *interactionSQL) domain.Interaction {
	res := domain.Interaction{
		ID:           rec.ID,
		UserID:       rec.UserID,
		ArticleTitle: rec.ArticleTitle,
		Category:     rec.Category,
		Description:  rec.Description,
		Timestamp:    rec.CreatedAt,
	}
	if rec.Rating.Valid {
		res.Rating = domain.RatingPtr(int(rec.Rating.Int64))
	}
	return res
}
