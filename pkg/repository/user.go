package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/umputun/newsrec/pkg/domain"
)

// UserRepository stores accounts with bcrypt-hashed passwords
type UserRepository struct {
	db   *sqlx.DB
	cost int
}

// userSQL represents a user for SQL operations
type userSQL struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// NewUserRepository creates a new user repository. Zero cost means bcrypt.DefaultCost.
func NewUserRepository(database *sqlx.DB, cost int) *UserRepository {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserRepository{db: database, cost: cost}
}

// CreateUser registers a new account, returns domain.ErrUserExists if username or email is taken
func (r *UserRepository) CreateUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM users WHERE username = ? OR email = ?)", username, email)
	if err != nil {
		return nil, fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	rec := &userSQL{Username: username, Email: email, PasswordHash: string(hash), CreatedAt: time.Now().UTC()}
	query := `
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES (:username, :email, :password_hash, :created_at)
	`
	result, err := r.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		// lost a race with a concurrent signup
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if rec.ID, err = result.LastInsertId(); err != nil {
		return nil, fmt.Errorf("get insert id: %w", err)
	}
	return r.toDomainUser(rec), nil
}

// GetUser retrieves a user by username
func (r *UserRepository) GetUser(ctx context.Context, username string) (*domain.User, error) {
	var rec userSQL
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM users WHERE username = ?", username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return r.toDomainUser(&rec), nil
}

// Authenticate checks the password, returns domain.ErrInvalidCredentials on unknown user or mismatch
func (r *UserRepository) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := r.GetUser(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// toDomainUser converts userSQL to domain.User
func (r *UserRepository) toDomainUser(rec *userSQL) *domain.User {
	return &domain.User{
		ID:           rec.ID,
		Username:     rec.Username,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
	}
}
