package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mariotoorrees/iPowerLab/models"
	"github.com/mariotoorrees/iPowerLab/services"
)

type MealController struct {
	meals    *services.MealService
	progress *services.ProgressService
}

func NewMealController(meals *services.MealService, progress *services.ProgressService) *MealController {
	return &MealController{meals: meals, progress: progress}
}

// GET /api/users/:id/meals?date=2026-08-28
func (mc *MealController) ListMeals(c *gin.Context) {
	userID, err := intParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := dateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mc.meals.MealsWithFood(userID, date))
}

// GET /api/users/:id/meals/type/:mealType?date=
func (mc *MealController) ListMealsByType(c *gin.Context) {
	userID, err := intParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := dateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mc.meals.MealsByType(userID, c.Param("mealType"), date))
}

// POST /api/meals
func (mc *MealController) AddMeal(c *gin.Context) {
	var in models.InsertMeal
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal, err := mc.meals.AddMeal(in)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// DELETE /api/meals/:id
func (mc *MealController) RemoveMeal(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !mc.meals.RemoveMeal(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/users/:id/nutrition?date=
func (mc *MealController) GetDailyNutrition(c *gin.Context) {
	userID, err := intParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := dateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mc.meals.DailyNutrition(userID, date))
}

// GET /api/users/:id/progress?date=
func (mc *MealController) GetDailyProgress(c *gin.Context) {
	userID, err := intParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := dateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if date == nil {
		now := time.Now()
		date = &now
	}
	progress, ok := mc.progress.DailyProgress(userID, date)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, progress)
}
