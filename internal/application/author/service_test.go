package author

import (
	"context"
	"testing"

	"github.com/recipeshare/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) GetOrCreateByEmail(ctx context.Context, email, authorName string) (*domain.Author, error) {
	args := m.Called(ctx, email, authorName)
	a, _ := args.Get(0).(*domain.Author)
	return a, args.Error(1)
}
func (m *mockRepo) Get(ctx context.Context, authorID int64) (*domain.Author, error) {
	args := m.Called(ctx, authorID)
	a, _ := args.Get(0).(*domain.Author)
	return a, args.Error(1)
}
func (m *mockRepo) GetByEmail(ctx context.Context, email string) (*domain.Author, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(*domain.Author)
	return a, args.Error(1)
}
func (m *mockRepo) List(ctx context.Context) ([]domain.Author, error) {
	args := m.Called(ctx)
	authors, _ := args.Get(0).([]domain.Author)
	return authors, args.Error(1)
}
func (m *mockRepo) Update(ctx context.Context, authorID int64, req domain.UpdateAuthorRequest) (*domain.Author, error) {
	args := m.Called(ctx, authorID, req)
	a, _ := args.Get(0).(*domain.Author)
	return a, args.Error(1)
}
func (m *mockRepo) Delete(ctx context.Context, authorID int64) error {
	return m.Called(ctx, authorID).Error(0)
}

type mockRecipeLister struct{ mock.Mock }

func (m *mockRecipeLister) ListByAuthor(ctx context.Context, authorID int64) ([]domain.ShortRecipe, error) {
	args := m.Called(ctx, authorID)
	recipes, _ := args.Get(0).([]domain.ShortRecipe)
	return recipes, args.Error(1)
}

type mockCommentLister struct{ mock.Mock }

func (m *mockCommentLister) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, authorID)
	comments, _ := args.Get(0).([]domain.Comment)
	return comments, args.Error(1)
}

type mockCredentialSvc struct{ mock.Mock }

func (m *mockCredentialSvc) IssueTempCode(ctx context.Context, author *domain.Author) (string, error) {
	args := m.Called(ctx, author)
	return args.String(0), args.Error(1)
}
func (m *mockCredentialSvc) VerifyTempCode(ctx context.Context, authorID int64, candidate string) (bool, error) {
	args := m.Called(ctx, authorID, candidate)
	return args.Bool(0), args.Error(1)
}
func (m *mockCredentialSvc) IssueSessionToken(ctx context.Context, authorID int64, token string) error {
	return m.Called(ctx, authorID, token).Error(0)
}
func (m *mockCredentialSvc) VerifySessionToken(ctx context.Context, authorID int64, candidate string) (bool, error) {
	args := m.Called(ctx, authorID, candidate)
	return args.Bool(0), args.Error(1)
}

type mockSigner struct{ mock.Mock }

func (m *mockSigner) Sign(authorID int64) (string, error) {
	args := m.Called(authorID)
	return args.String(0), args.Error(1)
}

func TestSendCode_CreatesAuthorOnFirstContact(t *testing.T) {
	repo := &mockRepo{}
	creds := &mockCredentialSvc{}
	a := &domain.Author{AuthorID: 5, Email: "a@b.com"}
	repo.On("GetOrCreateByEmail", mock.Anything, "a@b.com", "Alex").Return(a, nil)
	creds.On("IssueTempCode", mock.Anything, a).Return("123456", nil)

	svc := NewService(repo, &mockRecipeLister{}, &mockCommentLister{}, creds, &mockSigner{})
	err := svc.SendCode(context.Background(), domain.SendCodeRequest{Email: "a@b.com", AuthorName: "Alex"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
	creds.AssertExpectations(t)
}

func TestSendCode_IssueFailurePropagates(t *testing.T) {
	repo := &mockRepo{}
	creds := &mockCredentialSvc{}
	a := &domain.Author{AuthorID: 5, Email: "a@b.com"}
	repo.On("GetOrCreateByEmail", mock.Anything, "a@b.com", "").Return(a, nil)
	creds.On("IssueTempCode", mock.Anything, a).Return("", assert.AnError)

	svc := NewService(repo, &mockRecipeLister{}, &mockCommentLister{}, creds, &mockSigner{})
	err := svc.SendCode(context.Background(), domain.SendCodeRequest{Email: "a@b.com"})
	require.Error(t, err)
}

func TestVerifyCode_HappyPath(t *testing.T) {
	repo := &mockRepo{}
	creds := &mockCredentialSvc{}
	signer := &mockSigner{}
	a := &domain.Author{AuthorID: 5, Email: "a@b.com"}
	repo.On("GetByEmail", mock.Anything, "a@b.com").Return(a, nil)
	creds.On("VerifyTempCode", mock.Anything, int64(5), "123456").Return(true, nil)
	signer.On("Sign", int64(5)).Return("signed.jwt", nil)
	creds.On("IssueSessionToken", mock.Anything, int64(5), "signed.jwt").Return(nil)

	svc := NewService(repo, &mockRecipeLister{}, &mockCommentLister{}, creds, signer)
	token, got, err := svc.VerifyCode(context.Background(), domain.VerifyCodeRequest{Email: "a@b.com", Code: "123456"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", token)
	assert.Equal(t, a, got)
	creds.AssertExpectations(t)
}

func TestVerifyCode_UnknownEmailIsUnauthorized(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByEmail", mock.Anything, "nobody@b.com").Return(nil, domain.ErrNotFound)

	svc := NewService(repo, &mockRecipeLister{}, &mockCommentLister{}, &mockCredentialSvc{}, &mockSigner{})
	_, _, err := svc.VerifyCode(context.Background(), domain.VerifyCodeRequest{Email: "nobody@b.com", Code: "123456"})

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyCode_WrongCodeIsUnauthorized(t *testing.T) {
	repo := &mockRepo{}
	creds := &mockCredentialSvc{}
	signer := &mockSigner{}
	repo.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.Author{AuthorID: 5, Email: "a@b.com"}, nil)
	creds.On("VerifyTempCode", mock.Anything, int64(5), "000000").Return(false, nil)

	svc := NewService(repo, &mockRecipeLister{}, &mockCommentLister{}, creds, signer)
	_, _, err := svc.VerifyCode(context.Background(), domain.VerifyCodeRequest{Email: "a@b.com", Code: "000000"})

	require.ErrorIs(t, err, domain.ErrUnauthorized)
	signer.AssertNotCalled(t, "Sign", mock.Anything)
}

func TestGet_EmbedsRecipesAndComments(t *testing.T) {
	repo := &mockRepo{}
	recipes := &mockRecipeLister{}
	comments := &mockCommentLister{}
	repo.On("Get", mock.Anything, int64(5)).Return(&domain.Author{AuthorID: 5, Email: "a@b.com"}, nil)
	recipes.On("ListByAuthor", mock.Anything, int64(5)).Return([]domain.ShortRecipe{{RecipeID: 1, RecipeName: "Borscht"}}, nil)
	comments.On("ListByAuthor", mock.Anything, int64(5)).Return([]domain.Comment{{CommentID: 9}}, nil)

	svc := NewService(repo, recipes, comments, &mockCredentialSvc{}, &mockSigner{})
	a, err := svc.Get(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, a.Recipes, 1)
	assert.Equal(t, "Borscht", a.Recipes[0].RecipeName)
	require.Len(t, a.Comments, 1)
}
