package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recipeshare/api/internal/domain"
)

// AuthorRepo provides typed Postgres operations for the authors table.
type AuthorRepo struct {
	db *pgxpool.Pool
}

func NewAuthorRepo(db *pgxpool.Pool) *AuthorRepo {
	return &AuthorRepo{db: db}
}

// GetOrCreateByEmail returns the author with the given email, creating
// one if none exists. Upsert keeps the operation race-free under
// concurrent send-code requests for a fresh email.
func (r *AuthorRepo) GetOrCreateByEmail(ctx context.Context, email, authorName string) (*domain.Author, error) {
	var a domain.Author
	err := r.db.QueryRow(ctx, `
		INSERT INTO authors (email, author_name)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING author_id, email, author_name, created_at
	`, email, authorName).Scan(&a.AuthorID, &a.Email, &a.AuthorName, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get or create author: %w", err)
	}
	return &a, nil
}

func (r *AuthorRepo) Get(ctx context.Context, authorID int64) (*domain.Author, error) {
	var a domain.Author
	err := r.db.QueryRow(ctx, `
		SELECT author_id, email, author_name, created_at
		FROM authors
		WHERE author_id = $1
	`, authorID).Scan(&a.AuthorID, &a.Email, &a.AuthorName, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("author %d: %w", authorID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AuthorRepo) GetByEmail(ctx context.Context, email string) (*domain.Author, error) {
	var a domain.Author
	err := r.db.QueryRow(ctx, `
		SELECT author_id, email, author_name, created_at
		FROM authors
		WHERE email = $1
	`, email).Scan(&a.AuthorID, &a.Email, &a.AuthorName, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("author %s: %w", email, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns all authors ordered by email, matching the API's
// default author listing.
func (r *AuthorRepo) List(ctx context.Context) ([]domain.Author, error) {
	rows, err := r.db.Query(ctx, `
		SELECT author_id, email, author_name, created_at
		FROM authors
		ORDER BY email
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []domain.Author
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.AuthorID, &a.Email, &a.AuthorName, &a.CreatedAt); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *AuthorRepo) Update(ctx context.Context, authorID int64, req domain.UpdateAuthorRequest) (*domain.Author, error) {
	a, err := r.Get(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if req.AuthorName != nil {
		a.AuthorName = *req.AuthorName
	}
	if req.Email != nil {
		a.Email = *req.Email
	}
	_, err = r.db.Exec(ctx, `
		UPDATE authors SET email = $2, author_name = $3 WHERE author_id = $1
	`, authorID, a.Email, a.AuthorName)
	if err != nil {
		return nil, fmt.Errorf("update author: %w", err)
	}
	return a, nil
}

func (r *AuthorRepo) Delete(ctx context.Context, authorID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM authors WHERE author_id = $1`, authorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("author %d: %w", authorID, domain.ErrNotFound)
	}
	return nil
}
