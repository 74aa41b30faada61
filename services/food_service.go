package services

import (
	"github.com/mariotoorrees/iPowerLab/models"
	"github.com/mariotoorrees/iPowerLab/storage"
)

type FoodService struct {
	store storage.Storage
}

func NewFoodService(store storage.Storage) *FoodService {
	return &FoodService{store: store}
}

// Search filters the catalog by case-insensitive substring match on
// name. An unmatched query returns an empty slice, not an error.
func (s *FoodService) Search(query string, limit int) []models.Food {
	return s.store.GetFoods(query, limit)
}

func (s *FoodService) Get(id int) (models.Food, bool) {
	return s.store.GetFood(id)
}

func (s *FoodService) Add(in models.InsertFood) models.Food {
	return s.store.AddFood(in)
}
