package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/dailydiet/internal/server/models"
	"github.com/dmitrijs2005/dailydiet/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// MealUpdate carries the fields of a partial meal update. Nil pointers mean
// "keep the stored value". DateTime is set only when the client supplied
// both the date and the hour; a one-sided pair is rejected during request
// validation before it ever reaches the service.
type MealUpdate struct {
	Name        *string
	Description *string
	DateTime    *time.Time
	IsDiet      *bool
}

type MealService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMealService(db *sql.DB, m repomanager.RepositoryManager) *MealService {
	return &MealService{db: db, repomanager: m}
}

// Create persists a new meal owned by userID and returns it.
func (s *MealService) Create(ctx context.Context, userID, name, description string, dateTime time.Time, isDiet bool) (*models.Meal, error) {

	repo := s.repomanager.Meals(s.db)

	meal := &models.Meal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: description,
		DateTime:    dateTime,
		IsDiet:      isDiet,
	}

	return repo.Create(ctx, meal)
}

// List returns all meals owned by userID, ordered ascending by date_time.
func (s *MealService) List(ctx context.Context, userID string) ([]*models.Meal, error) {
	return s.repomanager.Meals(s.db).ListByUser(ctx, userID)
}

// Get returns the meal owned by userID with the given id. A meal owned by
// another user is indistinguishable from a nonexistent one
// (common.ErrorNotFound either way).
func (s *MealService) Get(ctx context.Context, userID, mealID string) (*models.Meal, error) {
	return s.repomanager.Meals(s.db).GetByID(ctx, userID, mealID)
}

// Update applies a partial update to the meal owned by userID. Provided
// fields replace stored values; omitted fields are kept. The read and the
// write are two separate round trips; concurrent updates to the same meal
// are last-write-wins.
func (s *MealService) Update(ctx context.Context, userID, mealID string, upd MealUpdate) error {

	repo := s.repomanager.Meals(s.db)

	meal, err := repo.GetByID(ctx, userID, mealID)
	if err != nil {
		return err
	}

	if upd.Name != nil {
		meal.Name = *upd.Name
	}
	if upd.Description != nil {
		meal.Description = *upd.Description
	}
	if upd.DateTime != nil {
		meal.DateTime = *upd.DateTime
	}
	if upd.IsDiet != nil {
		meal.IsDiet = *upd.IsDiet
	}

	return repo.Update(ctx, meal)
}

// Delete hard-deletes the meal owned by userID with the given id.
func (s *MealService) Delete(ctx context.Context, userID, mealID string) error {
	return s.repomanager.Meals(s.db).Delete(ctx, userID, mealID)
}

// Metrics computes the caller's aggregate meal counts and best diet streak
// from their chronologically ordered history.
func (s *MealService) Metrics(ctx context.Context, userID string) (*models.MealMetrics, error) {

	meals, err := s.repomanager.Meals(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	m := calculateMetrics(meals)
	return &m, nil
}

// calculateMetrics folds once over a time-ordered meal sequence. The streak
// counter increments on each diet-compliant meal and resets on each
// non-compliant one; the best value observed is kept. Record order is the
// only windowing; calendar days play no role.
func calculateMetrics(meals []*models.Meal) models.MealMetrics {
	var m models.MealMetrics

	currentStreak := 0
	for _, meal := range meals {
		m.TotalMeals++
		if meal.IsDiet {
			m.DietMeals++
			currentStreak++
			if currentStreak > m.BestDietStreak {
				m.BestDietStreak = currentStreak
			}
		} else {
			m.NonDietMeals++
			currentStreak = 0
		}
	}

	return m
}
