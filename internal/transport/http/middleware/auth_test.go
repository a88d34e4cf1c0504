package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/recipeshare/api/internal/config"
	"github.com/recipeshare/api/internal/domain"
	jwtinfra "github.com/recipeshare/api/internal/infrastructure/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func newTestProvider() *jwtinfra.Provider {
	return jwtinfra.NewProvider(&config.Config{
		JWTSecret:       "test-secret",
		SessionTokenTTL: 24 * time.Hour,
	})
}

func okHandler(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestAuth_MissingHeader(t *testing.T) {
	p := newTestProvider()
	creds := &mockCredentialSvc{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	Auth(p, creds)(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_MalformedToken(t *testing.T) {
	p := newTestProvider()
	creds := &mockCredentialSvc{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rr := httptest.NewRecorder()
	Auth(p, creds)(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_ValidTokenButNotInStore(t *testing.T) {
	p := newTestProvider()
	token, err := p.Sign(5)
	require.NoError(t, err)

	// Signature checks out, but the stored session copy is gone.
	creds := &mockCredentialSvc{}
	creds.On("VerifySessionToken", mock.Anything, int64(5), token).Return(false, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	Auth(p, creds)(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	creds.AssertExpectations(t)
}

func TestAuth_HappyPath_InjectsAuthorID(t *testing.T) {
	p := newTestProvider()
	token, err := p.Sign(42)
	require.NoError(t, err)

	creds := &mockCredentialSvc{}
	creds.On("VerifySessionToken", mock.Anything, int64(42), token).Return(true, nil)

	var gotID int64
	var gotOK bool
	h := Auth(p, creds)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = AuthorIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, gotOK)
	assert.Equal(t, int64(42), gotID)
}
