package models

import "time"

// Meal types accepted by the API.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// Meal is a consumption event linking a user to a catalog food.
type Meal struct {
	ID       int       `json:"id"`
	UserID   int       `json:"userId"`
	FoodID   int       `json:"foodId"`
	MealType string    `json:"mealType"`
	Servings float64   `json:"servings"`
	Date     time.Time `json:"date"`
}

type InsertMeal struct {
	UserID   int        `json:"userId" binding:"required"`
	FoodID   int        `json:"foodId" binding:"required"`
	MealType string     `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	Servings float64    `json:"servings" binding:"required,gt=0"`
	Date     *time.Time `json:"date"` // defaults to now
}

// MealWithFood is a Meal enriched with its referenced Food record,
// the shape the client renders and the aggregation engine consumes.
type MealWithFood struct {
	Meal
	Food Food `json:"food"`
}
