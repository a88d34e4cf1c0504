package author

import (
	"context"
	"errors"
	"fmt"

	"github.com/recipeshare/api/internal/application/credential"
	"github.com/recipeshare/api/internal/domain"
)

type Repository interface {
	GetOrCreateByEmail(ctx context.Context, email, authorName string) (*domain.Author, error)
	Get(ctx context.Context, authorID int64) (*domain.Author, error)
	GetByEmail(ctx context.Context, email string) (*domain.Author, error)
	List(ctx context.Context) ([]domain.Author, error)
	Update(ctx context.Context, authorID int64, req domain.UpdateAuthorRequest) (*domain.Author, error)
	Delete(ctx context.Context, authorID int64) error
}

type RecipeLister interface {
	ListByAuthor(ctx context.Context, authorID int64) ([]domain.ShortRecipe, error)
}

type CommentLister interface {
	ListByAuthor(ctx context.Context, authorID int64) ([]domain.Comment, error)
}

// TokenSigner signs a session JWT for an author.
type TokenSigner interface {
	Sign(authorID int64) (string, error)
}

// Service drives the code-based login flow and author reads.
type Service interface {
	// SendCode looks the author up by email (creating one on first
	// contact) and emails a temporary login code.
	SendCode(ctx context.Context, req domain.SendCodeRequest) error
	// VerifyCode exchanges a valid emailed code for a signed session
	// token. The token is also stored server-side so logout and expiry
	// are enforceable without waiting for the JWT to lapse.
	VerifyCode(ctx context.Context, req domain.VerifyCodeRequest) (string, *domain.Author, error)
	Get(ctx context.Context, authorID int64) (*domain.Author, error)
	List(ctx context.Context) ([]domain.Author, error)
	Update(ctx context.Context, authorID int64, req domain.UpdateAuthorRequest) (*domain.Author, error)
	Delete(ctx context.Context, authorID int64) error
}

type service struct {
	repo        Repository
	recipes     RecipeLister
	comments    CommentLister
	credentials credential.Service
	signer      TokenSigner
}

func NewService(repo Repository, recipes RecipeLister, comments CommentLister, credentials credential.Service, signer TokenSigner) Service {
	return &service{
		repo:        repo,
		recipes:     recipes,
		comments:    comments,
		credentials: credentials,
		signer:      signer,
	}
}

func (s *service) SendCode(ctx context.Context, req domain.SendCodeRequest) error {
	a, err := s.repo.GetOrCreateByEmail(ctx, req.Email, req.AuthorName)
	if err != nil {
		return err
	}
	_, err = s.credentials.IssueTempCode(ctx, a)
	return err
}

func (s *service) VerifyCode(ctx context.Context, req domain.VerifyCodeRequest) (string, *domain.Author, error) {
	a, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, fmt.Errorf("invalid code: %w", domain.ErrUnauthorized)
		}
		return "", nil, err
	}
	ok, err := s.credentials.VerifyTempCode(ctx, a.AuthorID, req.Code)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, fmt.Errorf("invalid code: %w", domain.ErrUnauthorized)
	}
	token, err := s.signer.Sign(a.AuthorID)
	if err != nil {
		return "", nil, err
	}
	if err := s.credentials.IssueSessionToken(ctx, a.AuthorID, token); err != nil {
		return "", nil, err
	}
	return token, a, nil
}

// Get returns the author with their recipes and comments embedded.
func (s *service) Get(ctx context.Context, authorID int64) (*domain.Author, error) {
	a, err := s.repo.Get(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if a.Recipes, err = s.recipes.ListByAuthor(ctx, authorID); err != nil {
		return nil, err
	}
	if a.Comments, err = s.comments.ListByAuthor(ctx, authorID); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) List(ctx context.Context) ([]domain.Author, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, authorID int64, req domain.UpdateAuthorRequest) (*domain.Author, error) {
	return s.repo.Update(ctx, authorID, req)
}

func (s *service) Delete(ctx context.Context, authorID int64) error {
	return s.repo.Delete(ctx, authorID)
}
