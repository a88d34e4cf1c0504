package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recipeshare/api/internal/domain"
)

// StageRepo provides typed Postgres operations for the stages table.
type StageRepo struct {
	db *pgxpool.Pool
}

func NewStageRepo(db *pgxpool.Pool) *StageRepo {
	return &StageRepo{db: db}
}

func (r *StageRepo) Create(ctx context.Context, s *domain.Stage) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO stages (recipe_id, stage_order, description)
		VALUES ($1, $2, $3)
		RETURNING stage_id
	`, s.RecipeID, s.Order, s.Description).Scan(&s.StageID)
	if err != nil {
		return fmt.Errorf("create stage: %w", err)
	}
	return nil
}

func (r *StageRepo) Get(ctx context.Context, stageID int64) (*domain.Stage, error) {
	var s domain.Stage
	err := r.db.QueryRow(ctx, `
		SELECT stage_id, recipe_id, stage_order, description
		FROM stages
		WHERE stage_id = $1
	`, stageID).Scan(&s.StageID, &s.RecipeID, &s.Order, &s.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("stage %d: %w", stageID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByRecipe returns the recipe's stages ordered by their position.
func (r *StageRepo) ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Stage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT stage_id, recipe_id, stage_order, description
		FROM stages
		WHERE recipe_id = $1
		ORDER BY stage_order
	`, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stages []domain.Stage
	for rows.Next() {
		var s domain.Stage
		if err := rows.Scan(&s.StageID, &s.RecipeID, &s.Order, &s.Description); err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, rows.Err()
}

// List returns all stages ordered by position, the default listing the
// API exposes.
func (r *StageRepo) List(ctx context.Context) ([]domain.Stage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT stage_id, recipe_id, stage_order, description
		FROM stages
		ORDER BY stage_order
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stages []domain.Stage
	for rows.Next() {
		var s domain.Stage
		if err := rows.Scan(&s.StageID, &s.RecipeID, &s.Order, &s.Description); err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, rows.Err()
}

// ShiftFrom increments the order of every stage of the recipe at or
// past startOrder by one, as a single statement. A single UPDATE keeps
// the shift atomic with respect to concurrent readers and other shifts:
// no interleaving of per-row writes can produce duplicate orders.
// Returns the number of rows shifted; zero matches is a valid no-op.
func (r *StageRepo) ShiftFrom(ctx context.Context, recipeID int64, startOrder int) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE stages
		SET stage_order = stage_order + 1
		WHERE recipe_id = $1 AND stage_order >= $2
	`, recipeID, startOrder)
	if err != nil {
		return 0, fmt.Errorf("shift stages: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *StageRepo) Update(ctx context.Context, stageID int64, req domain.UpdateStageRequest) (*domain.Stage, error) {
	s, err := r.Get(ctx, stageID)
	if err != nil {
		return nil, err
	}
	if req.Order != nil {
		s.Order = *req.Order
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	_, err = r.db.Exec(ctx, `
		UPDATE stages SET stage_order = $2, description = $3 WHERE stage_id = $1
	`, stageID, s.Order, s.Description)
	if err != nil {
		return nil, fmt.Errorf("update stage: %w", err)
	}
	return s, nil
}

func (r *StageRepo) Delete(ctx context.Context, stageID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM stages WHERE stage_id = $1`, stageID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("stage %d: %w", stageID, domain.ErrNotFound)
	}
	return nil
}
