package domain

// Unit is the measurement unit of an ingredient quantity.
type Unit string

const (
	UnitBigSpoon   Unit = "ст.л."
	UnitSmallSpoon Unit = "ч.л."
	UnitGram       Unit = "г"
	UnitMilliliter Unit = "мл"
	UnitPiece      Unit = "шт."
)

// ValidUnit reports whether u is one of the known measurement units.
func ValidUnit(u Unit) bool {
	switch u {
	case UnitBigSpoon, UnitSmallSpoon, UnitGram, UnitMilliliter, UnitPiece:
		return true
	}
	return false
}

type Ingredient struct {
	IngredientID   int64  `json:"id"`
	IngredientName string `json:"ingredient_name"`
	Quantity       int    `json:"quantity"`
	Unit           Unit   `json:"unit"`
	RecipeID       int64  `json:"-"`

	Recipe *ShortRecipe `json:"recipe,omitempty"`
}

type CreateIngredientRequest struct {
	RecipeID       int64  `json:"recipe" validate:"required,min=1"`
	IngredientName string `json:"ingredient_name" validate:"required"`
	Quantity       int    `json:"quantity" validate:"required,min=1"`
	Unit           Unit   `json:"unit"`
}

type UpdateIngredientRequest struct {
	IngredientName *string `json:"ingredient_name"`
	Quantity       *int    `json:"quantity" validate:"omitempty,min=1"`
	Unit           *Unit   `json:"unit"`
}
