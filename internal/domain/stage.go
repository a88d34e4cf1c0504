package domain

// Stage is one preparation step of a recipe. Order values are unique
// within a recipe but not necessarily contiguous; the reorder operation
// opens a hole for an insert without renumbering from 1.
type Stage struct {
	StageID     int64  `json:"id"`
	RecipeID    int64  `json:"-"`
	Order       int    `json:"order"`
	Description string `json:"description"`

	Recipe *ShortRecipe `json:"recipe,omitempty"`
}

type CreateStageRequest struct {
	RecipeID    int64  `json:"recipe" validate:"required,min=1"`
	Order       int    `json:"order" validate:"required,min=1"`
	Description string `json:"description" validate:"required"`
}

type UpdateStageRequest struct {
	Order       *int    `json:"order" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

// ReorderStagesRequest shifts every stage of the recipe whose order is
// at or past StartOrder up by one, opening a hole at StartOrder.
// Pointer fields distinguish a missing field from a zero value.
type ReorderStagesRequest struct {
	RecipeID   *int64 `json:"recipe_id"`
	StartOrder *int   `json:"start_order"`
}
