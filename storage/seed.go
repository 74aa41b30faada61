package storage

import (
	"time"

	"github.com/mariotoorrees/iPowerLab/models"
)

// Seed installs the demo data set: one user, the default food catalog,
// a 90-day weigh-in history and three meals for today, plus the
// nutritionist's welcome message. Called once at process start.
func (s *MemStorage) Seed() {
	foods := s.seedFoods()

	user := s.CreateUser(models.InsertUser{
		Username:      "user",
		Password:      "password",
		Name:          "John Smith",
		Email:         "john@example.com",
		Weight:        180,
		WeightUnit:    "lbs",
		Height:        70,
		HeightUnit:    "in",
		Age:           35,
		ActivityLevel: "moderate",
		TargetWeight:  165,
		WeeklyGoal:    "lose",
		CalorieGoal:   2000,
		ProteinGoal:   150,
		CarbsGoal:     200,
		FatGoal:       60,
	})

	today := time.Now()
	history := []struct {
		daysAgo int
		weight  float64
	}{
		{90, 180},
		{75, 178.5},
		{60, 176},
		{45, 175},
		{30, 173.5},
		{15, 172},
		{7, 170.5},
		{0, 170},
	}
	for _, h := range history {
		d := today.AddDate(0, 0, -h.daysAgo)
		s.AddWeight(models.InsertWeight{UserID: user.ID, Weight: h.weight, Date: &d})
	}

	if len(foods) >= 5 {
		s.AddMeal(models.InsertMeal{
			UserID:   user.ID,
			FoodID:   foods[0].ID, // oatmeal
			MealType: models.MealTypeBreakfast,
			Servings: 1,
		})
		s.AddMeal(models.InsertMeal{
			UserID:   user.ID,
			FoodID:   foods[2].ID, // chicken salad
			MealType: models.MealTypeLunch,
			Servings: 1,
		})
		s.AddMeal(models.InsertMeal{
			UserID:   user.ID,
			FoodID:   foods[4].ID, // apple
			MealType: models.MealTypeSnack,
			Servings: 1,
		})
	}

	s.AddChatMessage(models.InsertChatMessage{
		UserID:        user.ID,
		Content:       "Welcome to iPowerLab! I'm your personal AI nutrition assistant. How can I help you today?",
		IsUserMessage: false,
	})
}

func (s *MemStorage) seedFoods() []models.Food {
	catalog := []models.InsertFood{
		{Name: "Oatmeal with Berries", Calories: 220, Protein: 8, Carbs: 40, Fat: 4, ServingSize: 1, ServingUnit: "bowl (250g)"},
		{Name: "Coffee with Milk", Calories: 130, Protein: 4, Carbs: 12, Fat: 7, ServingSize: 1, ServingUnit: "cup (250ml)"},
		{Name: "Grilled Chicken Salad", Calories: 420, Protein: 35, Carbs: 25, Fat: 20, ServingSize: 1, ServingUnit: "serving (350g)"},
		{Name: "Whole Grain Bread", Calories: 180, Protein: 7, Carbs: 32, Fat: 3, ServingSize: 2, ServingUnit: "slices (80g)"},
		{Name: "Apple", Calories: 80, Protein: 0.5, Carbs: 20, Fat: 0.3, ServingSize: 1, ServingUnit: "medium (150g)"},
		{Name: "Baked Salmon", Calories: 280, Protein: 40, Carbs: 0, Fat: 14, ServingSize: 1, ServingUnit: "fillet (150g)"},
		{Name: "Steamed Vegetables", Calories: 90, Protein: 4, Carbs: 16, Fat: 1.5, ServingSize: 1, ServingUnit: "cup (150g)"},
		{Name: "Brown Rice", Calories: 100, Protein: 2.5, Carbs: 22, Fat: 0.8, ServingSize: 0.5, ServingUnit: "cup (100g)"},
	}

	out := make([]models.Food, 0, len(catalog))
	for _, f := range catalog {
		out = append(out, s.AddFood(f))
	}
	return out
}
