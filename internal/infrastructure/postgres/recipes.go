package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recipeshare/api/internal/domain"
)

// RecipeRepo provides typed Postgres operations for the recipes table.
// Reads join the owning author so responses can embed its short shape.
type RecipeRepo struct {
	db *pgxpool.Pool
}

func NewRecipeRepo(db *pgxpool.Pool) *RecipeRepo {
	return &RecipeRepo{db: db}
}

func (r *RecipeRepo) Create(ctx context.Context, rec *domain.Recipe) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO recipes (recipe_name, author_id)
		VALUES ($1, $2)
		RETURNING recipe_id, created_at, updated_at
	`, rec.RecipeName, rec.AuthorID).Scan(&rec.RecipeID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create recipe: %w", err)
	}
	return nil
}

func (r *RecipeRepo) Get(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	var rec domain.Recipe
	var author domain.ShortAuthor
	err := r.db.QueryRow(ctx, `
		SELECT r.recipe_id, r.recipe_name, r.author_id, r.created_at, r.updated_at,
		       a.author_id, a.author_name
		FROM recipes r
		JOIN authors a ON a.author_id = r.author_id
		WHERE r.recipe_id = $1
	`, recipeID).Scan(
		&rec.RecipeID, &rec.RecipeName, &rec.AuthorID, &rec.CreatedAt, &rec.UpdatedAt,
		&author.AuthorID, &author.AuthorName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("recipe %d: %w", recipeID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	rec.Author = &author
	return &rec, nil
}

func (r *RecipeRepo) List(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.recipe_id, r.recipe_name, r.author_id, r.created_at, r.updated_at,
		       a.author_id, a.author_name
		FROM recipes r
		JOIN authors a ON a.author_id = r.author_id
		ORDER BY r.recipe_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		var rec domain.Recipe
		var author domain.ShortAuthor
		if err := rows.Scan(
			&rec.RecipeID, &rec.RecipeName, &rec.AuthorID, &rec.CreatedAt, &rec.UpdatedAt,
			&author.AuthorID, &author.AuthorName,
		); err != nil {
			return nil, err
		}
		rec.Author = &author
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

// ListByAuthor returns the author's recipes in their short shape for
// embedding in author detail responses.
func (r *RecipeRepo) ListByAuthor(ctx context.Context, authorID int64) ([]domain.ShortRecipe, error) {
	rows, err := r.db.Query(ctx, `
		SELECT recipe_id, recipe_name
		FROM recipes
		WHERE author_id = $1
		ORDER BY recipe_id
	`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []domain.ShortRecipe
	for rows.Next() {
		var rec domain.ShortRecipe
		if err := rows.Scan(&rec.RecipeID, &rec.RecipeName); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

func (r *RecipeRepo) Update(ctx context.Context, recipeID int64, req domain.UpdateRecipeRequest) (*domain.Recipe, error) {
	rec, err := r.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if req.RecipeName != nil {
		rec.RecipeName = *req.RecipeName
	}
	err = r.db.QueryRow(ctx, `
		UPDATE recipes SET recipe_name = $2, updated_at = now()
		WHERE recipe_id = $1
		RETURNING updated_at
	`, recipeID, rec.RecipeName).Scan(&rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return rec, nil
}

// Delete removes the recipe; its stages, ingredients and comments go
// with it via ON DELETE CASCADE.
func (r *RecipeRepo) Delete(ctx context.Context, recipeID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE recipe_id = $1`, recipeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipe %d: %w", recipeID, domain.ErrNotFound)
	}
	return nil
}
