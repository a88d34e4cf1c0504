package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/recipeshare/api/internal/config"
	jwtinfra "github.com/recipeshare/api/internal/infrastructure/jwt"
	"github.com/recipeshare/api/internal/infrastructure/postgres"
	redisinfra "github.com/recipeshare/api/internal/infrastructure/redis"
	"github.com/recipeshare/api/internal/infrastructure/smtp"
	transporthttp "github.com/recipeshare/api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	ctx := context.Background()

	// Postgres pool + schema bootstrap (creates tables if missing).
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()
	if err := postgres.Bootstrap(ctx, pool); err != nil {
		log.Fatalf("schema bootstrap: %v", err)
	}

	// Redis backs temp codes, session tokens and like sets.
	redisClient := redisinfra.NewClient(cfg)
	defer redisClient.Close()

	deps := &transporthttp.Deps{
		AuthorRepo:     postgres.NewAuthorRepo(pool),
		RecipeRepo:     postgres.NewRecipeRepo(pool),
		StageRepo:      postgres.NewStageRepo(pool),
		IngredientRepo: postgres.NewIngredientRepo(pool),
		CommentRepo:    postgres.NewCommentRepo(pool),
		EphemeralStore: redisinfra.NewEphemeralStore(redisClient),
		LikeStore:      redisinfra.NewLikeStore(redisClient),
		Mailer:         smtp.NewMailer(cfg),
		JWTProvider:    jwtinfra.NewProvider(cfg),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
