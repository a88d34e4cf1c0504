package recipe

import (
	"context"

	"github.com/recipeshare/api/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, rec *domain.Recipe) error
	Get(ctx context.Context, recipeID int64) (*domain.Recipe, error)
	List(ctx context.Context) ([]domain.Recipe, error)
	Update(ctx context.Context, recipeID int64, req domain.UpdateRecipeRequest) (*domain.Recipe, error)
	Delete(ctx context.Context, recipeID int64) error
}

type CommentLister interface {
	ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Comment, error)
}

type Service interface {
	Create(ctx context.Context, authorID int64, req domain.CreateRecipeRequest) (*domain.Recipe, error)
	// Get returns the recipe with its comments embedded.
	Get(ctx context.Context, recipeID int64) (*domain.Recipe, error)
	List(ctx context.Context) ([]domain.Recipe, error)
	Update(ctx context.Context, recipeID int64, req domain.UpdateRecipeRequest) (*domain.Recipe, error)
	Delete(ctx context.Context, recipeID int64) error
}

type service struct {
	repo     Repository
	comments CommentLister
}

func NewService(repo Repository, comments CommentLister) Service {
	return &service{repo: repo, comments: comments}
}

func (s *service) Create(ctx context.Context, authorID int64, req domain.CreateRecipeRequest) (*domain.Recipe, error) {
	rec := &domain.Recipe{
		RecipeName: req.RecipeName,
		AuthorID:   authorID,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, rec.RecipeID)
}

func (s *service) Get(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	rec, err := s.repo.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if rec.Comments, err = s.comments.ListByRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) List(ctx context.Context) ([]domain.Recipe, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, recipeID int64, req domain.UpdateRecipeRequest) (*domain.Recipe, error) {
	return s.repo.Update(ctx, recipeID, req)
}

func (s *service) Delete(ctx context.Context, recipeID int64) error {
	return s.repo.Delete(ctx, recipeID)
}
