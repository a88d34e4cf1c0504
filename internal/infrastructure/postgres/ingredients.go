package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recipeshare/api/internal/domain"
)

// IngredientRepo provides typed Postgres operations for the
// ingredients table.
type IngredientRepo struct {
	db *pgxpool.Pool
}

func NewIngredientRepo(db *pgxpool.Pool) *IngredientRepo {
	return &IngredientRepo{db: db}
}

func (r *IngredientRepo) Create(ctx context.Context, ing *domain.Ingredient) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO ingredients (ingredient_name, quantity, unit, recipe_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ingredient_id
	`, ing.IngredientName, ing.Quantity, string(ing.Unit), ing.RecipeID).Scan(&ing.IngredientID)
	if err != nil {
		return fmt.Errorf("create ingredient: %w", err)
	}
	return nil
}

func (r *IngredientRepo) Get(ctx context.Context, ingredientID int64) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	err := r.db.QueryRow(ctx, `
		SELECT ingredient_id, ingredient_name, quantity, unit, recipe_id
		FROM ingredients
		WHERE ingredient_id = $1
	`, ingredientID).Scan(&ing.IngredientID, &ing.IngredientName, &ing.Quantity, &ing.Unit, &ing.RecipeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("ingredient %d: %w", ingredientID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *IngredientRepo) List(ctx context.Context) ([]domain.Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ingredient_id, ingredient_name, quantity, unit, recipe_id
		FROM ingredients
		ORDER BY ingredient_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []domain.Ingredient
	for rows.Next() {
		var ing domain.Ingredient
		if err := rows.Scan(&ing.IngredientID, &ing.IngredientName, &ing.Quantity, &ing.Unit, &ing.RecipeID); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

func (r *IngredientRepo) ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ingredient_id, ingredient_name, quantity, unit, recipe_id
		FROM ingredients
		WHERE recipe_id = $1
		ORDER BY ingredient_id
	`, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []domain.Ingredient
	for rows.Next() {
		var ing domain.Ingredient
		if err := rows.Scan(&ing.IngredientID, &ing.IngredientName, &ing.Quantity, &ing.Unit, &ing.RecipeID); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

func (r *IngredientRepo) Update(ctx context.Context, ingredientID int64, req domain.UpdateIngredientRequest) (*domain.Ingredient, error) {
	ing, err := r.Get(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	if req.IngredientName != nil {
		ing.IngredientName = *req.IngredientName
	}
	if req.Quantity != nil {
		ing.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		ing.Unit = *req.Unit
	}
	_, err = r.db.Exec(ctx, `
		UPDATE ingredients SET ingredient_name = $2, quantity = $3, unit = $4
		WHERE ingredient_id = $1
	`, ingredientID, ing.IngredientName, ing.Quantity, string(ing.Unit))
	if err != nil {
		return nil, fmt.Errorf("update ingredient: %w", err)
	}
	return ing, nil
}

func (r *IngredientRepo) Delete(ctx context.Context, ingredientID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ingredients WHERE ingredient_id = $1`, ingredientID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ingredient %d: %w", ingredientID, domain.ErrNotFound)
	}
	return nil
}
