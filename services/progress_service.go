package services

import (
	"time"

	"github.com/mariotoorrees/iPowerLab/storage"
)

// ProgressService compares a day's consumed nutrition against the
// user's goals, the shape the dashboard's progress rings render.
type ProgressService struct {
	store storage.Storage
	meals *MealService
}

func NewProgressService(store storage.Storage, meals *MealService) *ProgressService {
	return &ProgressService{store: store, meals: meals}
}

// DailyProgress returns consumed/goal/percent per nutrient for the
// given day. Percent is clamped to 1.
func (s *ProgressService) DailyProgress(userID int, date *time.Time) (map[string]any, bool) {
	user, ok := s.store.GetUser(userID)
	if !ok {
		return nil, false
	}

	n := s.meals.DailyNutrition(userID, date)

	pct := func(consumed, goal float64) float64 {
		if goal <= 0 {
			return 0
		}
		p := consumed / goal
		if p > 1 {
			return 1
		}
		return p
	}

	entry := func(consumed float64, goal int) map[string]float64 {
		return map[string]float64{
			"consumed": consumed,
			"goal":     float64(goal),
			"percent":  pct(consumed, float64(goal)),
		}
	}

	return map[string]any{
		"calories": entry(n.Calories, user.CalorieGoal),
		"protein":  entry(n.Protein, user.ProteinGoal),
		"carbs":    entry(n.Carbs, user.CarbsGoal),
		"fat":      entry(n.Fat, user.FatGoal),
	}, true
}
