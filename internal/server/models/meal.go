package models

import "time"

// Meal is a single recorded meal owned by a user. DateTime combines the
// calendar date and time of day into one absolute timestamp.
type Meal struct {
	ID          string
	UserID      string
	Name        string
	Description string
	DateTime    time.Time
	IsDiet      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MealMetrics aggregates a user's meal history. BestDietStreak is the length
// of the longest run of consecutive diet-compliant meals in chronological
// order.
type MealMetrics struct {
	TotalMeals     int
	DietMeals      int
	NonDietMeals   int
	BestDietStreak int
}
