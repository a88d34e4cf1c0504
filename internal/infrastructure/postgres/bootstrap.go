package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap creates the schema if it doesn't already exist. Safe to run
// on every startup. Children of a recipe (stages, ingredients,
// comments) cascade-delete with it, as do an author's recipes and
// comments.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS authors (
			author_id   BIGSERIAL PRIMARY KEY,
			email       TEXT NOT NULL UNIQUE,
			author_name TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS recipes (
			recipe_id   BIGSERIAL PRIMARY KEY,
			recipe_name TEXT NOT NULL,
			author_id   BIGINT NOT NULL REFERENCES authors(author_id) ON DELETE CASCADE,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS stages (
			stage_id    BIGSERIAL PRIMARY KEY,
			recipe_id   BIGINT NOT NULL REFERENCES recipes(recipe_id) ON DELETE CASCADE,
			stage_order INTEGER NOT NULL CHECK (stage_order >= 1),
			description TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS stages_recipe_order_idx ON stages (recipe_id, stage_order)`,
		`CREATE TABLE IF NOT EXISTS ingredients (
			ingredient_id   BIGSERIAL PRIMARY KEY,
			ingredient_name TEXT NOT NULL,
			quantity        INTEGER NOT NULL,
			unit            TEXT NOT NULL DEFAULT 'г',
			recipe_id       BIGINT NOT NULL REFERENCES recipes(recipe_id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			comment_id BIGSERIAL PRIMARY KEY,
			content    TEXT NOT NULL,
			author_id  BIGINT NOT NULL REFERENCES authors(author_id) ON DELETE CASCADE,
			recipe_id  BIGINT NOT NULL REFERENCES recipes(recipe_id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			slog.Error("schema bootstrap failed", "err", err)
			return err
		}
	}
	return nil
}
