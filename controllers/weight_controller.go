package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mariotoorrees/iPowerLab/models"
	"github.com/mariotoorrees/iPowerLab/services"
)

type WeightController struct {
	weights *services.WeightService
}

func NewWeightController(weights *services.WeightService) *WeightController {
	return &WeightController{weights: weights}
}

// GET /api/users/:id/weights?limit=
func (wc *WeightController) ListWeights(c *gin.Context) {
	userID, err := intParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, wc.weights.List(userID, limitQuery(c)))
}

// GET /api/users/:id/weights/trend
func (wc *WeightController) WeightTrend(c *gin.Context) {
	userID, err := intParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trend, ok := wc.weights.Trend(userID, time.Now())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, trend)
}

// POST /api/weights
func (wc *WeightController) AddWeight(c *gin.Context) {
	var in models.InsertWeight
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, wc.weights.Add(in))
}
