package ingredient

import (
	"context"
	"fmt"

	"github.com/recipeshare/api/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, ing *domain.Ingredient) error
	Get(ctx context.Context, ingredientID int64) (*domain.Ingredient, error)
	List(ctx context.Context) ([]domain.Ingredient, error)
	Update(ctx context.Context, ingredientID int64, req domain.UpdateIngredientRequest) (*domain.Ingredient, error)
	Delete(ctx context.Context, ingredientID int64) error
}

type RecipeGetter interface {
	Get(ctx context.Context, recipeID int64) (*domain.Recipe, error)
}

type Service interface {
	Create(ctx context.Context, req domain.CreateIngredientRequest) (*domain.Ingredient, error)
	Get(ctx context.Context, ingredientID int64) (*domain.Ingredient, error)
	List(ctx context.Context) ([]domain.Ingredient, error)
	Update(ctx context.Context, ingredientID int64, req domain.UpdateIngredientRequest) (*domain.Ingredient, error)
	Delete(ctx context.Context, ingredientID int64) error
}

type service struct {
	repo    Repository
	recipes RecipeGetter
}

func NewService(repo Repository, recipes RecipeGetter) Service {
	return &service{repo: repo, recipes: recipes}
}

func (s *service) Create(ctx context.Context, req domain.CreateIngredientRequest) (*domain.Ingredient, error) {
	if req.Unit == "" {
		req.Unit = domain.UnitGram
	}
	if !domain.ValidUnit(req.Unit) {
		return nil, fmt.Errorf("unknown unit %q: %w", req.Unit, domain.ErrBadRequest)
	}
	rec, err := s.recipes.Get(ctx, req.RecipeID)
	if err != nil {
		return nil, err
	}
	ing := &domain.Ingredient{
		IngredientName: req.IngredientName,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		RecipeID:       req.RecipeID,
	}
	if err := s.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	ing.Recipe = &domain.ShortRecipe{RecipeID: rec.RecipeID, RecipeName: rec.RecipeName}
	return ing, nil
}

func (s *service) Get(ctx context.Context, ingredientID int64) (*domain.Ingredient, error) {
	ing, err := s.repo.Get(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	s.attachRecipe(ctx, ing)
	return ing, nil
}

func (s *service) List(ctx context.Context) ([]domain.Ingredient, error) {
	ingredients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ingredients {
		s.attachRecipe(ctx, &ingredients[i])
	}
	return ingredients, nil
}

func (s *service) Update(ctx context.Context, ingredientID int64, req domain.UpdateIngredientRequest) (*domain.Ingredient, error) {
	if req.Unit != nil && !domain.ValidUnit(*req.Unit) {
		return nil, fmt.Errorf("unknown unit %q: %w", *req.Unit, domain.ErrBadRequest)
	}
	ing, err := s.repo.Update(ctx, ingredientID, req)
	if err != nil {
		return nil, err
	}
	s.attachRecipe(ctx, ing)
	return ing, nil
}

func (s *service) Delete(ctx context.Context, ingredientID int64) error {
	return s.repo.Delete(ctx, ingredientID)
}

func (s *service) attachRecipe(ctx context.Context, ing *domain.Ingredient) {
	rec, err := s.recipes.Get(ctx, ing.RecipeID)
	if err != nil {
		return
	}
	ing.Recipe = &domain.ShortRecipe{RecipeID: rec.RecipeID, RecipeName: rec.RecipeName}
}
