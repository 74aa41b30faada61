package services

import (
	"errors"

	"github.com/mariotoorrees/iPowerLab/models"
	"github.com/mariotoorrees/iPowerLab/storage"
	"github.com/mariotoorrees/iPowerLab/utils"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
)

type UserService struct {
	store storage.Storage
}

func NewUserService(store storage.Storage) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Get(id int) (models.User, bool) {
	return s.store.GetUser(id)
}

// Register creates a user; the username must not already exist.
func (s *UserService) Register(in models.InsertUser) (models.User, error) {
	if _, exists := s.store.GetUserByUsername(in.Username); exists {
		return models.User{}, ErrUsernameTaken
	}
	return s.store.CreateUser(in), nil
}

func (s *UserService) Update(id int, updates models.UserUpdate) (models.User, bool) {
	return s.store.UpdateUser(id, updates)
}

type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// BMI derives body mass index from the stored profile, converting
// imperial measurements to metric first.
func (s *UserService) BMI(id int) (BMIResult, error) {
	u, ok := s.store.GetUser(id)
	if !ok {
		return BMIResult{}, ErrUserNotFound
	}

	heightCm := u.Height
	if u.HeightUnit == "in" {
		heightCm = u.Height * utils.CmPerIn
	}
	weightKg := u.Weight
	if u.WeightUnit == "lbs" {
		weightKg = u.Weight / utils.LbsPerKg
	}

	bmi, err := utils.CalculateBMI(heightCm, weightKg)
	if err != nil {
		return BMIResult{}, err
	}
	return BMIResult{BMI: bmi, Category: utils.BMICategory(bmi)}, nil
}
