package meals

import (
	"context"

	"github.com/dmitrijs2005/dailydiet/internal/server/models"
)

// Repository is the owner-scoped meal store. Every lookup and mutation takes
// the owner's user id; a meal belonging to another user behaves exactly like
// a missing one.
type Repository interface {
	Create(ctx context.Context, meal *models.Meal) (*models.Meal, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Meal, error)
	GetByID(ctx context.Context, userID, mealID string) (*models.Meal, error)
	Update(ctx context.Context, meal *models.Meal) error
	Delete(ctx context.Context, userID, mealID string) error
}
