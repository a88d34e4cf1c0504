package domain

import "time"

// Recipe owns its stages, ingredients and comments; the database
// cascades their deletion with the recipe.
type Recipe struct {
	RecipeID   int64     `json:"id"`
	RecipeName string    `json:"recipe_name"`
	AuthorID   int64     `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Populated on reads for response shaping.
	Author   *ShortAuthor `json:"author,omitempty"`
	Comments []Comment    `json:"comments,omitempty"`
}

// ShortRecipe is the embedded recipe shape used inside stage,
// ingredient and comment responses.
type ShortRecipe struct {
	RecipeID   int64  `json:"id"`
	RecipeName string `json:"recipe_name"`
}

func (r *Recipe) Short() ShortRecipe {
	return ShortRecipe{RecipeID: r.RecipeID, RecipeName: r.RecipeName}
}

type CreateRecipeRequest struct {
	RecipeName string `json:"recipe_name" validate:"required"`
}

type UpdateRecipeRequest struct {
	RecipeName *string `json:"recipe_name"`
}
