package stage

import (
	"context"
	"fmt"

	"github.com/recipeshare/api/internal/domain"
)

// Repository is the stage persistence the service requires. ShiftFrom
// must be a single atomic filtered update on the backing store.
type Repository interface {
	Create(ctx context.Context, s *domain.Stage) error
	Get(ctx context.Context, stageID int64) (*domain.Stage, error)
	List(ctx context.Context) ([]domain.Stage, error)
	ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Stage, error)
	ShiftFrom(ctx context.Context, recipeID int64, startOrder int) (int64, error)
	Update(ctx context.Context, stageID int64, req domain.UpdateStageRequest) (*domain.Stage, error)
	Delete(ctx context.Context, stageID int64) error
}

// RecipeGetter resolves the owning recipe for response shaping.
type RecipeGetter interface {
	Get(ctx context.Context, recipeID int64) (*domain.Recipe, error)
}

type Service interface {
	// ReorderFrom opens a hole at startOrder: every stage of the recipe
	// with order >= startOrder moves up by one, in one atomic update.
	// Returns the number of stages shifted; zero is a valid no-op.
	ReorderFrom(ctx context.Context, recipeID int64, startOrder int) (int64, error)
	Create(ctx context.Context, req domain.CreateStageRequest) (*domain.Stage, error)
	Get(ctx context.Context, stageID int64) (*domain.Stage, error)
	List(ctx context.Context) ([]domain.Stage, error)
	Update(ctx context.Context, stageID int64, req domain.UpdateStageRequest) (*domain.Stage, error)
	Delete(ctx context.Context, stageID int64) error
}

type service struct {
	repo    Repository
	recipes RecipeGetter
}

func NewService(repo Repository, recipes RecipeGetter) Service {
	return &service{repo: repo, recipes: recipes}
}

func (s *service) ReorderFrom(ctx context.Context, recipeID int64, startOrder int) (int64, error) {
	if recipeID < 1 {
		return 0, fmt.Errorf("recipe_id must be a positive integer: %w", domain.ErrBadRequest)
	}
	if startOrder < 1 {
		return 0, fmt.Errorf("start_order must be a positive integer: %w", domain.ErrBadRequest)
	}
	return s.repo.ShiftFrom(ctx, recipeID, startOrder)
}

func (s *service) Create(ctx context.Context, req domain.CreateStageRequest) (*domain.Stage, error) {
	rec, err := s.recipes.Get(ctx, req.RecipeID)
	if err != nil {
		return nil, err
	}
	st := &domain.Stage{
		RecipeID:    req.RecipeID,
		Order:       req.Order,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	st.Recipe = &domain.ShortRecipe{RecipeID: rec.RecipeID, RecipeName: rec.RecipeName}
	return st, nil
}

func (s *service) Get(ctx context.Context, stageID int64) (*domain.Stage, error) {
	st, err := s.repo.Get(ctx, stageID)
	if err != nil {
		return nil, err
	}
	s.attachRecipe(ctx, st)
	return st, nil
}

func (s *service) List(ctx context.Context) ([]domain.Stage, error) {
	stages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range stages {
		s.attachRecipe(ctx, &stages[i])
	}
	return stages, nil
}

func (s *service) Update(ctx context.Context, stageID int64, req domain.UpdateStageRequest) (*domain.Stage, error) {
	st, err := s.repo.Update(ctx, stageID, req)
	if err != nil {
		return nil, err
	}
	s.attachRecipe(ctx, st)
	return st, nil
}

func (s *service) Delete(ctx context.Context, stageID int64) error {
	return s.repo.Delete(ctx, stageID)
}

// attachRecipe embeds the short recipe shape; a stage whose recipe
// cannot be resolved is still returned without it.
func (s *service) attachRecipe(ctx context.Context, st *domain.Stage) {
	rec, err := s.recipes.Get(ctx, st.RecipeID)
	if err != nil {
		return
	}
	st.Recipe = &domain.ShortRecipe{RecipeID: rec.RecipeID, RecipeName: rec.RecipeName}
}
