package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/recipeshare/api/internal/application/credential"
	jwtinfra "github.com/recipeshare/api/internal/infrastructure/jwt"
)

type contextKey string

const authorIDKey contextKey = "author_id"

// Auth validates the Bearer JWT and checks it against the server-side
// session store before the handler runs, then injects the
// authenticated author id into the request context. A token whose
// stored copy has expired or been replaced is rejected even if its
// signature is still valid.
func Auth(provider *jwtinfra.Provider, credentials credential.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, `{"error":"missing or invalid authorization header"}`, http.StatusUnauthorized)
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := provider.Verify(tokenStr)
			if err != nil {
				http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
				return
			}
			ok, err := credentials.VerifySessionToken(r.Context(), claims.AuthorID, tokenStr)
			if err != nil {
				http.Error(w, `{"error":"session check failed"}`, http.StatusInternalServerError)
				return
			}
			if !ok {
				http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), authorIDKey, claims.AuthorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthorIDFromContext extracts the authenticated author id from the
// request context.
func AuthorIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(authorIDKey).(int64)
	return id, ok
}
