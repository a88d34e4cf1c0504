package jwtinfra

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/recipeshare/api/internal/config"
)

// Claims holds the JWT payload fields.
type Claims struct {
	AuthorID int64 `json:"author_id"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 JWTs. The signed token is also
// stored in the ephemeral store, so a token outlives neither its
// signature expiry nor the stored copy.
type Provider struct {
	secret []byte
	expiry time.Duration
}

func NewProvider(cfg *config.Config) *Provider {
	return &Provider{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.SessionTokenTTL,
	}
}

func (p *Provider) Sign(authorID int64) (string, error) {
	claims := Claims{
		AuthorID: authorID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(p.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
