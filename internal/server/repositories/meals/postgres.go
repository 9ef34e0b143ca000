// Package meals provides a PostgreSQL-backed repository for meal records,
// with every operation scoped to the owning user.
package meals

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dailydiet/internal/common"
	"github.com/dmitrijs2005/dailydiet/internal/dbx"
	"github.com/dmitrijs2005/dailydiet/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new meal row and returns it with the timestamps the
// database assigned.
func (r *PostgresRepository) Create(ctx context.Context, meal *models.Meal) (*models.Meal, error) {
	query := `
		INSERT INTO meals (id, user_id, name, description, date_time, is_diet)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		meal.ID, meal.UserID, meal.Name, meal.Description, meal.DateTime, meal.IsDiet).
		Scan(&meal.CreatedAt, &meal.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return meal, nil
}

// ListByUser returns all meals owned by userID ordered ascending by
// date_time. The chronological order is what the streak computation relies
// on.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Meal, error) {
	query := `
		SELECT id, user_id, name, description, date_time, is_diet, created_at, updated_at
		FROM meals
		WHERE user_id = $1
		ORDER BY date_time ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Meal{}
	for rows.Next() {
		meal := &models.Meal{}
		err := rows.Scan(&meal.ID, &meal.UserID, &meal.Name, &meal.Description,
			&meal.DateTime, &meal.IsDiet, &meal.CreatedAt, &meal.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// GetByID returns the meal with the given id owned by userID. A meal owned
// by another user yields common.ErrorNotFound, same as a nonexistent one.
func (r *PostgresRepository) GetByID(ctx context.Context, userID, mealID string) (*models.Meal, error) {
	query := `
		SELECT id, user_id, name, description, date_time, is_diet, created_at, updated_at
		FROM meals
		WHERE id = $1 AND user_id = $2
	`
	meal := &models.Meal{}
	err := r.db.QueryRowContext(ctx, query, mealID, userID).
		Scan(&meal.ID, &meal.UserID, &meal.Name, &meal.Description,
			&meal.DateTime, &meal.IsDiet, &meal.CreatedAt, &meal.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return meal, nil
}

// Update replaces the stored field values of the meal identified by
// (meal.ID, meal.UserID) and refreshes updated_at. If no row matches,
// it returns common.ErrorNotFound.
func (r *PostgresRepository) Update(ctx context.Context, meal *models.Meal) error {
	query := `
		UPDATE meals
		SET name = $1, description = $2, date_time = $3, is_diet = $4, updated_at = now()
		WHERE id = $5 AND user_id = $6
	`
	res, err := r.db.ExecContext(ctx, query,
		meal.Name, meal.Description, meal.DateTime, meal.IsDiet, meal.ID, meal.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Delete hard-deletes the meal with the given id owned by userID. If no row
// matches, it returns common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, userID, mealID string) error {
	query := `
		DELETE FROM meals
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, mealID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
