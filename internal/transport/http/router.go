package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/recipeshare/api/internal/application/author"
	"github.com/recipeshare/api/internal/application/comment"
	"github.com/recipeshare/api/internal/application/credential"
	"github.com/recipeshare/api/internal/application/ingredient"
	"github.com/recipeshare/api/internal/application/recipe"
	"github.com/recipeshare/api/internal/application/social"
	"github.com/recipeshare/api/internal/application/stage"
	"github.com/recipeshare/api/internal/config"
	"github.com/recipeshare/api/internal/transport/http/handler"
	appmiddleware "github.com/recipeshare/api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	credentialSvc := credential.NewService(
		deps.EphemeralStore,
		deps.Mailer,
		cfg.TempCodeTTL,
		cfg.SessionTokenTTL,
		cfg.ConsumeCodeOnSuccess,
	)
	authorSvc := author.NewService(deps.AuthorRepo, deps.RecipeRepo, deps.CommentRepo, credentialSvc, deps.JWTProvider)
	recipeSvc := recipe.NewService(deps.RecipeRepo, deps.CommentRepo)
	stageSvc := stage.NewService(deps.StageRepo, deps.RecipeRepo)
	ingredientSvc := ingredient.NewService(deps.IngredientRepo, deps.RecipeRepo)
	commentSvc := comment.NewService(deps.CommentRepo)
	socialSvc := social.NewService(deps.LikeStore)

	authMw := appmiddleware.Auth(deps.JWTProvider, credentialSvc)

	// 5 requests/second, burst of 10 — applied to the code endpoints so
	// one client can neither flood the mailer nor brute-force codes.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	healthH := handler.NewHealthHandler()
	authorH := handler.NewAuthorHandler(authorSvc)
	recipeH := handler.NewRecipeHandler(recipeSvc)
	stageH := handler.NewStageHandler(stageSvc)
	ingredientH := handler.NewIngredientHandler(ingredientSvc)
	commentH := handler.NewCommentHandler(commentSvc)
	likeH := handler.NewLikeHandler(socialSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/authors/send-code", authorH.SendCode)
		r.With(sensitiveRL.Limit).Post("/authors/verify-code", authorH.VerifyCode)

		r.Get("/recipes", recipeH.List)
		r.Get("/recipes/{id}", recipeH.Get)
		r.Get("/stages", stageH.List)
		r.Get("/stages/{id}", stageH.Get)
		r.Get("/ingredients", ingredientH.List)
		r.Get("/ingredients/{id}", ingredientH.Get)
		r.Get("/comments", commentH.List)
		r.Get("/comments/{id}", commentH.Get)
		r.Get("/authors", authorH.List)
		r.Get("/authors/{id}", authorH.Get)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Put("/authors/{id}", authorH.Update)
			r.Delete("/authors/{id}", authorH.Delete)

			r.Post("/recipes", recipeH.Create)
			r.Put("/recipes/{id}", recipeH.Update)
			r.Delete("/recipes/{id}", recipeH.Delete)

			r.Post("/stages", stageH.Create)
			r.Post("/stages/reorder", stageH.Reorder)
			r.Put("/stages/{id}", stageH.Update)
			r.Delete("/stages/{id}", stageH.Delete)

			r.Post("/ingredients", ingredientH.Create)
			r.Put("/ingredients/{id}", ingredientH.Update)
			r.Delete("/ingredients/{id}", ingredientH.Delete)

			r.Post("/comments", commentH.Create)
			r.Put("/comments/{id}", commentH.Update)
			r.Delete("/comments/{id}", commentH.Delete)

			r.Get("/recipes/{id}/likes", likeH.RecipeLikes)
			r.Post("/recipes/{id}/likes", likeH.LikeRecipe)
			r.Delete("/recipes/{id}/likes", likeH.UnlikeRecipe)
			r.Get("/comments/{id}/likes", likeH.CommentLikes)
			r.Post("/comments/{id}/likes", likeH.LikeComment)
			r.Delete("/comments/{id}/likes", likeH.UnlikeComment)
		})
	})

	return r
}
