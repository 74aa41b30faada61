package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mariotoorrees/iPowerLab/models"
	"github.com/mariotoorrees/iPowerLab/services"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// GET /api/foods?q=chicken&limit=10
func (fc *FoodController) SearchFoods(c *gin.Context) {
	c.JSON(http.StatusOK, fc.foods.Search(c.Query("q"), limitQuery(c)))
}

// GET /api/foods/:id
func (fc *FoodController) GetFood(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	food, ok := fc.foods.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, food)
}

// POST /api/foods
func (fc *FoodController) AddFood(c *gin.Context) {
	var in models.InsertFood
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, fc.foods.Add(in))
}
