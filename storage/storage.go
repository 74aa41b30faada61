package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mariotoorrees/iPowerLab/models"
)

// Storage is the authoritative holder of all entity collections.
// Lookups report misses through the second return value; a miss is a
// normal outcome the caller maps to not-found at the boundary.
type Storage interface {
	GetUser(id int) (models.User, bool)
	GetUserByUsername(username string) (models.User, bool)
	CreateUser(in models.InsertUser) models.User
	UpdateUser(id int, updates models.UserUpdate) (models.User, bool)

	GetWeights(userID, limit int) []models.Weight
	AddWeight(in models.InsertWeight) models.Weight

	GetFoods(query string, limit int) []models.Food
	GetFood(id int) (models.Food, bool)
	AddFood(in models.InsertFood) models.Food

	GetMeals(userID int) []models.Meal
	GetMeal(id int) (models.Meal, bool)
	AddMeal(in models.InsertMeal) models.Meal
	RemoveMeal(id int) bool

	GetChatMessages(userID, limit int) []models.ChatMessage
	AddChatMessage(in models.InsertChatMessage) models.ChatMessage
}

// MemStorage keeps every collection in process memory. A single mutex
// guards all of them: mutations are trivial map/slice operations and no
// operation spans more than one entity type, so finer locking buys
// nothing. Ids are per-entity counters, assigned at insert, never reused.
type MemStorage struct {
	mu sync.RWMutex

	users        map[int]models.User
	weights      map[int][]models.Weight // keyed by user id
	foods        map[int]models.Food
	meals        map[int][]models.Meal // keyed by user id
	chatMessages map[int][]models.ChatMessage

	userID        int
	weightID      int
	foodID        int
	mealID        int
	chatMessageID int
}

var _ Storage = (*MemStorage)(nil)

func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:        make(map[int]models.User),
		weights:      make(map[int][]models.Weight),
		foods:        make(map[int]models.Food),
		meals:        make(map[int][]models.Meal),
		chatMessages: make(map[int][]models.ChatMessage),
	}
}

func (s *MemStorage) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *MemStorage) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *MemStorage) CreateUser(in models.InsertUser) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID++
	u := models.User{
		ID:                   s.userID,
		Username:             in.Username,
		Password:             in.Password,
		Name:                 in.Name,
		Email:                in.Email,
		Weight:               in.Weight,
		WeightUnit:           defaultString(in.WeightUnit, "lbs"),
		Height:               in.Height,
		HeightUnit:           defaultString(in.HeightUnit, "in"),
		Age:                  in.Age,
		ActivityLevel:        defaultString(in.ActivityLevel, "moderate"),
		TargetWeight:         in.TargetWeight,
		WeeklyGoal:           defaultString(in.WeeklyGoal, "maintain"),
		CalorieGoal:          defaultInt(in.CalorieGoal, 2000),
		ProteinGoal:          defaultInt(in.ProteinGoal, 120),
		CarbsGoal:            defaultInt(in.CarbsGoal, 200),
		FatGoal:              defaultInt(in.FatGoal, 60),
		UseDarkMode:          defaultBool(in.UseDarkMode, false),
		Units:                defaultString(in.Units, "imperial"),
		NotificationsEnabled: defaultBool(in.NotificationsEnabled, true),
	}
	s.users[u.ID] = u
	return u
}

func (s *MemStorage) UpdateUser(id int, updates models.UserUpdate) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}
	if updates.Password != nil {
		u.Password = *updates.Password
	}
	if updates.Name != nil {
		u.Name = *updates.Name
	}
	if updates.Email != nil {
		u.Email = *updates.Email
	}
	if updates.Weight != nil {
		u.Weight = *updates.Weight
	}
	if updates.WeightUnit != nil {
		u.WeightUnit = *updates.WeightUnit
	}
	if updates.Height != nil {
		u.Height = *updates.Height
	}
	if updates.HeightUnit != nil {
		u.HeightUnit = *updates.HeightUnit
	}
	if updates.Age != nil {
		u.Age = *updates.Age
	}
	if updates.ActivityLevel != nil {
		u.ActivityLevel = *updates.ActivityLevel
	}
	if updates.TargetWeight != nil {
		u.TargetWeight = *updates.TargetWeight
	}
	if updates.WeeklyGoal != nil {
		u.WeeklyGoal = *updates.WeeklyGoal
	}
	if updates.CalorieGoal != nil {
		u.CalorieGoal = *updates.CalorieGoal
	}
	if updates.ProteinGoal != nil {
		u.ProteinGoal = *updates.ProteinGoal
	}
	if updates.CarbsGoal != nil {
		u.CarbsGoal = *updates.CarbsGoal
	}
	if updates.FatGoal != nil {
		u.FatGoal = *updates.FatGoal
	}
	if updates.UseDarkMode != nil {
		u.UseDarkMode = *updates.UseDarkMode
	}
	if updates.Units != nil {
		u.Units = *updates.Units
	}
	if updates.NotificationsEnabled != nil {
		u.NotificationsEnabled = *updates.NotificationsEnabled
	}
	s.users[id] = u
	return u, true
}

// GetWeights returns a user's weigh-ins sorted by date descending,
// truncated to limit when limit > 0.
func (s *MemStorage) GetWeights(userID, limit int) []models.Weight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Weight, len(s.weights[userID]))
	copy(out, s.weights[userID])
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *MemStorage) AddWeight(in models.InsertWeight) models.Weight {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.weightID++
	w := models.Weight{
		ID:     s.weightID,
		UserID: in.UserID,
		Weight: in.Weight,
		Date:   orNow(in.Date),
	}
	s.weights[w.UserID] = append(s.weights[w.UserID], w)
	return w
}

// GetFoods filters the catalog by case-insensitive substring match on
// name; an empty query matches everything.
func (s *MemStorage) GetFoods(query string, limit int) []models.Food {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]models.Food, 0, len(s.foods))
	for _, f := range s.foods {
		if q == "" || strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *MemStorage) GetFood(id int) (models.Food, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.foods[id]
	return f, ok
}

func (s *MemStorage) AddFood(in models.InsertFood) models.Food {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.foodID++
	f := models.Food{
		ID:          s.foodID,
		Name:        in.Name,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
		ServingSize: in.ServingSize,
		ServingUnit: in.ServingUnit,
	}
	s.foods[f.ID] = f
	return f
}

func (s *MemStorage) GetMeals(userID int) []models.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Meal, len(s.meals[userID]))
	copy(out, s.meals[userID])
	return out
}

func (s *MemStorage) GetMeal(id int) (models.Meal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, userMeals := range s.meals {
		for _, m := range userMeals {
			if m.ID == id {
				return m, true
			}
		}
	}
	return models.Meal{}, false
}

func (s *MemStorage) AddMeal(in models.InsertMeal) models.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mealID++
	m := models.Meal{
		ID:       s.mealID,
		UserID:   in.UserID,
		FoodID:   in.FoodID,
		MealType: in.MealType,
		Servings: in.Servings,
		Date:     orNow(in.Date),
	}
	s.meals[m.UserID] = append(s.meals[m.UserID], m)
	return m
}

// RemoveMeal reports whether a record existed and was removed. An
// unknown id mutates nothing.
func (s *MemStorage) RemoveMeal(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, userMeals := range s.meals {
		for i, m := range userMeals {
			if m.ID == id {
				s.meals[userID] = append(userMeals[:i], userMeals[i+1:]...)
				return true
			}
		}
	}
	return false
}

// GetChatMessages returns a user's conversation sorted by timestamp
// ascending; limit keeps the most recent tail, not the head.
func (s *MemStorage) GetChatMessages(userID, limit int) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ChatMessage, len(s.chatMessages[userID]))
	copy(out, s.chatMessages[userID])
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

func (s *MemStorage) AddChatMessage(in models.InsertChatMessage) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chatMessageID++
	m := models.ChatMessage{
		ID:            s.chatMessageID,
		UserID:        in.UserID,
		Content:       in.Content,
		IsUserMessage: in.IsUserMessage,
		Timestamp:     time.Now(),
	}
	s.chatMessages[m.UserID] = append(s.chatMessages[m.UserID], m)
	return m
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func defaultBool(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func orNow(t *time.Time) time.Time {
	if t == nil {
		return time.Now()
	}
	return *t
}
