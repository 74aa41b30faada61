package services

import (
	"errors"
	"log"
	"time"

	"github.com/mariotoorrees/iPowerLab/models"
	"github.com/mariotoorrees/iPowerLab/storage"
	"github.com/mariotoorrees/iPowerLab/utils"
)

var ErrFoodNotFound = errors.New("food not found")

// MealService joins meals with their referenced foods and reduces
// nutrient totals per day.
type MealService struct {
	store storage.Storage
}

func NewMealService(store storage.Storage) *MealService {
	return &MealService{store: store}
}

// MealsWithFood returns the user's meals, optionally restricted to one
// calendar day, each enriched with its food record. A meal whose
// foodId no longer resolves is excluded and logged; the client never
// sees a composite with a missing food.
func (s *MealService) MealsWithFood(userID int, date *time.Time) []models.MealWithFood {
	meals := s.store.GetMeals(userID)

	out := make([]models.MealWithFood, 0, len(meals))
	for _, m := range meals {
		if date != nil && !utils.SameDay(m.Date, *date) {
			continue
		}
		food, ok := s.store.GetFood(m.FoodID)
		if !ok {
			log.Printf("meal %d references missing food %d, skipping", m.ID, m.FoodID)
			continue
		}
		out = append(out, models.MealWithFood{Meal: m, Food: food})
	}
	return out
}

// MealsByType filters MealsWithFood by exact meal type.
func (s *MealService) MealsByType(userID int, mealType string, date *time.Time) []models.MealWithFood {
	meals := s.MealsWithFood(userID, date)

	out := make([]models.MealWithFood, 0, len(meals))
	for _, m := range meals {
		if m.MealType == mealType {
			out = append(out, m)
		}
	}
	return out
}

// GetMeal returns the enriched view of a single meal.
func (s *MealService) GetMeal(id int) (models.MealWithFood, bool) {
	m, ok := s.store.GetMeal(id)
	if !ok {
		return models.MealWithFood{}, false
	}
	food, ok := s.store.GetFood(m.FoodID)
	if !ok {
		log.Printf("meal %d references missing food %d, skipping", m.ID, m.FoodID)
		return models.MealWithFood{}, false
	}
	return models.MealWithFood{Meal: m, Food: food}, true
}

// AddMeal creates a meal after checking the food reference resolves.
func (s *MealService) AddMeal(in models.InsertMeal) (models.Meal, error) {
	if _, ok := s.store.GetFood(in.FoodID); !ok {
		return models.Meal{}, ErrFoodNotFound
	}
	return s.store.AddMeal(in), nil
}

func (s *MealService) RemoveMeal(id int) bool {
	return s.store.RemoveMeal(id)
}

// DailyNutrition sums food.nutrient × meal.servings across the user's
// meals for the day. Zero meals yield a zero aggregate, not an error.
// Summation is order-independent, so the result is invariant under any
// permutation of the underlying meals. No rounding is applied here;
// rounding, if any, is presentation's business.
func (s *MealService) DailyNutrition(userID int, date *time.Time) models.DailyNutrition {
	var n models.DailyNutrition
	for _, m := range s.MealsWithFood(userID, date) {
		n.Calories += float64(m.Food.Calories) * m.Servings
		n.Protein += m.Food.Protein * m.Servings
		n.Carbs += m.Food.Carbs * m.Servings
		n.Fat += m.Food.Fat * m.Servings
	}
	return n
}
