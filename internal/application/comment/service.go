package comment

import (
	"context"
	"fmt"

	"github.com/recipeshare/api/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, c *domain.Comment) error
	Get(ctx context.Context, commentID int64) (*domain.Comment, error)
	List(ctx context.Context) ([]domain.Comment, error)
	Update(ctx context.Context, commentID int64, req domain.UpdateCommentRequest) (*domain.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

type Service interface {
	Create(ctx context.Context, authorID int64, req domain.CreateCommentRequest) (*domain.Comment, error)
	Get(ctx context.Context, commentID int64) (*domain.Comment, error)
	List(ctx context.Context) ([]domain.Comment, error)
	// Update and Delete are restricted to the comment's author.
	Update(ctx context.Context, authorID, commentID int64, req domain.UpdateCommentRequest) (*domain.Comment, error)
	Delete(ctx context.Context, authorID, commentID int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, authorID int64, req domain.CreateCommentRequest) (*domain.Comment, error) {
	c := &domain.Comment{
		Content:  req.Content,
		AuthorID: authorID,
		RecipeID: req.RecipeID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, c.CommentID)
}

func (s *service) Get(ctx context.Context, commentID int64) (*domain.Comment, error) {
	return s.repo.Get(ctx, commentID)
}

func (s *service) List(ctx context.Context) ([]domain.Comment, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, authorID, commentID int64, req domain.UpdateCommentRequest) (*domain.Comment, error) {
	c, err := s.repo.Get(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if c.AuthorID != authorID {
		return nil, fmt.Errorf("comment %d belongs to another author: %w", commentID, domain.ErrForbidden)
	}
	return s.repo.Update(ctx, commentID, req)
}

func (s *service) Delete(ctx context.Context, authorID, commentID int64) error {
	c, err := s.repo.Get(ctx, commentID)
	if err != nil {
		return err
	}
	if c.AuthorID != authorID {
		return fmt.Errorf("comment %d belongs to another author: %w", commentID, domain.ErrForbidden)
	}
	return s.repo.Delete(ctx, commentID)
}
