package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recipeshare/api/internal/domain"
)

// CommentRepo provides typed Postgres operations for the comments
// table. Reads join author and recipe for response shaping.
type CommentRepo struct {
	db *pgxpool.Pool
}

func NewCommentRepo(db *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{db: db}
}

const commentSelect = `
	SELECT c.comment_id, c.content, c.author_id, c.recipe_id, c.created_at, c.updated_at,
	       a.author_id, a.author_name,
	       r.recipe_id, r.recipe_name
	FROM comments c
	JOIN authors a ON a.author_id = c.author_id
	JOIN recipes r ON r.recipe_id = c.recipe_id
`

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	var author domain.ShortAuthor
	var recipe domain.ShortRecipe
	err := row.Scan(
		&c.CommentID, &c.Content, &c.AuthorID, &c.RecipeID, &c.CreatedAt, &c.UpdatedAt,
		&author.AuthorID, &author.AuthorName,
		&recipe.RecipeID, &recipe.RecipeName,
	)
	if err != nil {
		return nil, err
	}
	c.Author = &author
	c.Recipe = &recipe
	return &c, nil
}

func (r *CommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO comments (content, author_id, recipe_id)
		VALUES ($1, $2, $3)
		RETURNING comment_id, created_at, updated_at
	`, c.Content, c.AuthorID, c.RecipeID).Scan(&c.CommentID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *CommentRepo) Get(ctx context.Context, commentID int64) (*domain.Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx, commentSelect+` WHERE c.comment_id = $1`, commentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("comment %d: %w", commentID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CommentRepo) list(ctx context.Context, query string, args ...any) ([]domain.Comment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}

func (r *CommentRepo) List(ctx context.Context) ([]domain.Comment, error) {
	return r.list(ctx, commentSelect+` ORDER BY c.comment_id`)
}

func (r *CommentRepo) ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Comment, error) {
	return r.list(ctx, commentSelect+` WHERE c.recipe_id = $1 ORDER BY c.comment_id`, recipeID)
}

func (r *CommentRepo) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Comment, error) {
	return r.list(ctx, commentSelect+` WHERE c.author_id = $1 ORDER BY c.comment_id`, authorID)
}

func (r *CommentRepo) Update(ctx context.Context, commentID int64, req domain.UpdateCommentRequest) (*domain.Comment, error) {
	c, err := r.Get(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if req.Content != nil {
		c.Content = *req.Content
	}
	err = r.db.QueryRow(ctx, `
		UPDATE comments SET content = $2, updated_at = now()
		WHERE comment_id = $1
		RETURNING updated_at
	`, commentID, c.Content).Scan(&c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return c, nil
}

func (r *CommentRepo) Delete(ctx context.Context, commentID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %d: %w", commentID, domain.ErrNotFound)
	}
	return nil
}
