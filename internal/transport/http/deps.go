package http

import (
	jwtinfra "github.com/recipeshare/api/internal/infrastructure/jwt"
	"github.com/recipeshare/api/internal/infrastructure/postgres"
	redisinfra "github.com/recipeshare/api/internal/infrastructure/redis"
	"github.com/recipeshare/api/internal/infrastructure/smtp"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	AuthorRepo     *postgres.AuthorRepo
	RecipeRepo     *postgres.RecipeRepo
	StageRepo      *postgres.StageRepo
	IngredientRepo *postgres.IngredientRepo
	CommentRepo    *postgres.CommentRepo

	EphemeralStore *redisinfra.EphemeralStore
	LikeStore      *redisinfra.LikeStore

	Mailer      smtp.Mailer
	JWTProvider *jwtinfra.Provider
}
